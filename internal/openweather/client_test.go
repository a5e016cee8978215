package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentBody = `{
  "name": "New York",
  "weather": [{"main": "Clouds", "description": "broken clouds", "icon": "04d"}],
  "main": {"temp": 24.6, "feels_like": 25.4, "humidity": 61},
  "wind": {"speed": 3.6},
  "sys": {"sunrise": 1700000000, "sunset": 1700040000}
}`

// 2023-11-14 has three entries, 2023-11-15 has two.
const forecastBody = `{"list": [
  {"dt": 1699963200, "main": {"temp": 10.0}, "weather": [{"main": "Rain", "description": "light rain", "icon": "10d"}]},
  {"dt": 1699974000, "main": {"temp": 12.0}, "weather": [{"main": "Clouds", "description": "few clouds", "icon": "02d"}]},
  {"dt": 1699984800, "main": {"temp": 14.5}, "weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}]},
  {"dt": 1700049600, "main": {"temp": 8.0}, "weather": [{"main": "Clear", "description": "clear sky", "icon": "01d"}]},
  {"dt": 1700060400, "main": {"temp": 9.0}, "weather": [{"main": "Rain", "description": "moderate rain", "icon": "10d"}]}
]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&config.Config{OpenWeatherAPIKey: "key", OpenWeatherAPIURL: srv.URL, WeatherTimeout: time.Second})
	c.now = func() time.Time { return time.Unix(1700020000, 0) }
	return c
}

func TestCurrent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "New York", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "key", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(currentBody))
	})

	snap, err := c.Current(context.Background(), "New York")
	require.NoError(t, err)

	assert.Equal(t, "New York", snap.Location)
	assert.Equal(t, 25, snap.Temperature)
	assert.Equal(t, 25, snap.FeelsLike)
	assert.Equal(t, 61, snap.Humidity)
	assert.Equal(t, 3.6, snap.WindSpeed)
	assert.Equal(t, "Clouds", snap.Condition)
	assert.Equal(t, "broken clouds", snap.Description)
	assert.Equal(t, "day", snap.TimeOfDay)
}

func TestCurrent_NightOutsideDaylight(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(currentBody))
	})
	c.now = func() time.Time { return time.Unix(1700050000, 0) }

	snap, err := c.Current(context.Background(), "New York")
	require.NoError(t, err)
	assert.Equal(t, "night", snap.TimeOfDay)
}

func TestCurrent_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"unknown city", http.StatusNotFound, `{"cod":"404"}`},
		{"malformed", http.StatusOK, `{"weather": "nope"`},
		{"no conditions", http.StatusOK, `{"name":"X","weather":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			snap, err := c.Current(context.Background(), "Atlantis")
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
		})
	}
}

func TestCurrent_MissingAPIKey(t *testing.T) {
	c := NewClient(&config.Config{OpenWeatherAPIURL: "http://127.0.0.1:1"})
	_, err := c.Current(context.Background(), "Oslo")
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)

	_, err = c.Current(context.Background(), "  ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestForecast_GroupsByDay(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		_, _ = w.Write([]byte(forecastBody))
	})

	days, err := c.Forecast(context.Background(), "New York")
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, "2023-11-14", days[0].Date)
	assert.Equal(t, "Tuesday", days[0].Day)
	assert.Equal(t, 12, days[0].Temperature)
	assert.Equal(t, "Clouds", days[0].Condition)
	assert.Equal(t, "few clouds", days[0].Description)

	assert.Equal(t, "2023-11-15", days[1].Date)
	assert.Equal(t, 9, days[1].Temperature)
	assert.Equal(t, "Clear", days[1].Condition, "ties go to the condition seen first")
}

func TestOutfitHint(t *testing.T) {
	assert.Equal(t, "Light t-shirt + shorts + sun hat", OutfitHint(31))
	assert.Equal(t, "Sweater + jeans + light jacket", OutfitHint(15))
	assert.Equal(t, "Heavy layers + winter coat + hat + gloves + scarf", OutfitHint(-3))
}
