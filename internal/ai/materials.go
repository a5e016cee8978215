package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const DefaultMaterialScore = 60

var materialScores = map[string]int{
	"cotton":         80,
	"organic cotton": 95,
	"wool":           85,
	"linen":          90,
	"hemp":           95,
	"polyester":      50,
	"nylon":          45,
	"acrylic":        40,
	"spandex":        30,
	"leather":        60,
	"faux leather":   50,
	"denim":          70,
	"canvas":         85,
}

// MaterialScore looks a material up in the static sustainability table.
// Exact names win; otherwise the longest known name contained in the input
// is used, so "organic cotton blend" scores as organic cotton.
func MaterialScore(material string) int {
	m := strings.ToLower(strings.TrimSpace(material))
	if m == "" {
		return DefaultMaterialScore
	}
	if s, ok := materialScores[m]; ok {
		return s
	}
	best, bestLen := DefaultMaterialScore, 0
	for name, s := range materialScores {
		if len(name) > bestLen && strings.Contains(m, name) {
			best, bestLen = s, len(name)
		}
	}
	return best
}

type MaterialAnalysis struct {
	Material    string   `json:"material"`
	Score       int      `json:"score"`
	Explanation string   `json:"explanation"`
	Tips        []string `json:"tips"`
}

const defaultMaterialExplanation = "Could not analyze the sustainability of this material."

var defaultMaterialTips = []string{
	"Wash at lower temperatures",
	"Repair instead of replace",
	"Donate when no longer needed",
}

func DefaultMaterialAnalysis(material string) MaterialAnalysis {
	return MaterialAnalysis{
		Material:    material,
		Score:       DefaultMaterialScore,
		Explanation: defaultMaterialExplanation,
		Tips:        append([]string(nil), defaultMaterialTips...),
	}
}

const materialSystemPrompt = `You are a textile sustainability expert. Rate the environmental sustainability of a clothing material.
Return a JSON object with these exact fields:
{"score": 0-100, "explanation": "one or two sentences", "tips": ["care tip", "care tip", "care tip"]}
Return ONLY the JSON object, no extra text.`

type materialResult struct {
	Score       modelScore `json:"score"`
	Explanation string     `json:"explanation"`
	Tips        []string   `json:"tips"`
}

// AnalyzeMaterial asks the provider chain to rate a material. Missing fields
// are completed from the default answer; total failure returns the default.
func (c *Client) AnalyzeMaterial(ctx context.Context, material string) MaterialAnalysis {
	material = strings.TrimSpace(material)
	result := DefaultMaterialAnalysis(material)

	var parsed materialResult
	_, err := c.completeJSON(ctx, prompt{
		system: materialSystemPrompt,
		user:   fmt.Sprintf("Material: %s", material),
	}, &parsed)
	if err != nil {
		slog.Warn("material analysis fell back to defaults", "material", material, "error", err)
		return result
	}

	if score, ok := parsed.Score.Get(); ok {
		result.Score = clamp(score, 0, 100)
	}
	if e := strings.TrimSpace(parsed.Explanation); e != "" {
		result.Explanation = e
	}
	tips := make([]string, 0, len(parsed.Tips))
	for _, t := range parsed.Tips {
		if t = strings.TrimSpace(t); t != "" {
			tips = append(tips, t)
		}
	}
	if len(tips) > 0 {
		result.Tips = tips
	}
	return result
}
