package ai

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// modelScore decodes a score the way models actually send it: 85, 85.4 or
// "85". Anything unreadable leaves the score unset instead of failing the
// whole answer.
type modelScore struct {
	value int
	set   bool
}

func (s *modelScore) UnmarshalJSON(b []byte) error {
	*s = modelScore{}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		s.value, s.set = int(math.Round(v)), true
	case string:
		text := strings.TrimSuffix(strings.TrimSpace(v), "%")
		if n, err := strconv.Atoi(text); err == nil {
			s.value, s.set = n, true
		} else if f, err := strconv.ParseFloat(text, 64); err == nil {
			s.value, s.set = int(math.Round(f)), true
		}
	}
	return nil
}

// Get returns the score and whether the model supplied a readable one.
func (s modelScore) Get() (int, bool) {
	return s.value, s.set
}
