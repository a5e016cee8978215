// Package openweather fetches current conditions and daily forecasts from
// the OpenWeather API. Failures are surfaced as apperr.ErrUpstreamUnavailable.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const maxForecastDays = 5

// Provider is implemented by Client and by Cache.
type Provider interface {
	Current(ctx context.Context, location string) (*models.WeatherSnapshot, error)
	Forecast(ctx context.Context, location string) ([]models.ForecastDay, error)
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewClient(cfg *config.Config) *Client {
	timeout := cfg.WeatherTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  cfg.OpenWeatherAPIKey,
		baseURL: cfg.OpenWeatherAPIURL,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Name    string       `json:"name"`
	Weather []conditions `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []conditions `json:"weather"`
	} `json:"list"`
}

func (c *Client) Current(ctx context.Context, location string) (*models.WeatherSnapshot, error) {
	var data currentResponse
	if err := c.get(ctx, "/weather", location, &data); err != nil {
		return nil, err
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("%w: weather response has no conditions", apperr.ErrUpstreamUnavailable)
	}

	now := c.now()
	timeOfDay := "night"
	if now.Unix() > data.Sys.Sunrise && now.Unix() < data.Sys.Sunset {
		timeOfDay = "day"
	}

	name := data.Name
	if name == "" {
		name = location
	}
	return &models.WeatherSnapshot{
		Location:    name,
		Temperature: round(data.Main.Temp),
		Description: data.Weather[0].Description,
		Icon:        data.Weather[0].Icon,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		FeelsLike:   round(data.Main.FeelsLike),
		Condition:   data.Weather[0].Main,
		TimeOfDay:   timeOfDay,
		Timestamp:   now.UTC(),
	}, nil
}

// Forecast groups the 3-hourly forecast by UTC date: mean temperature and the
// most frequent condition per day, at most five days.
func (c *Client) Forecast(ctx context.Context, location string) ([]models.ForecastDay, error) {
	var data forecastResponse
	if err := c.get(ctx, "/forecast", location, &data); err != nil {
		return nil, err
	}

	type bucket struct {
		temps []float64
		conds []conditions
	}
	buckets := make(map[string]*bucket)
	for _, entry := range data.List {
		if len(entry.Weather) == 0 {
			continue
		}
		date := time.Unix(entry.Dt, 0).UTC().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
		}
		b.temps = append(b.temps, entry.Main.Temp)
		b.conds = append(b.conds, entry.Weather[0])
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > maxForecastDays {
		dates = dates[:maxForecastDays]
	}

	days := make([]models.ForecastDay, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]
		var sum float64
		for _, t := range b.temps {
			sum += t
		}
		top := mostFrequent(b.conds)
		parsed, _ := time.Parse("2006-01-02", d)
		days = append(days, models.ForecastDay{
			Date:        d,
			Day:         parsed.Weekday().String(),
			Temperature: round(sum / float64(len(b.temps))),
			Condition:   top.Main,
			Description: top.Description,
			Icon:        top.Icon,
		})
	}
	return days, nil
}

// mostFrequent returns the first entry of the most common condition; ties go
// to the condition that reached the count first.
func mostFrequent(conds []conditions) conditions {
	counts := make(map[string]int)
	first := make(map[string]conditions)
	best, bestCount := conds[0].Main, 0
	for _, c := range conds {
		if _, ok := first[c.Main]; !ok {
			first[c.Main] = c
		}
		counts[c.Main]++
		if counts[c.Main] > bestCount {
			best, bestCount = c.Main, counts[c.Main]
		}
	}
	return first[best]
}

func (c *Client) get(ctx context.Context, path, location string, out interface{}) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return apperr.Field("location", "is required")
	}
	if c.apiKey == "" {
		return fmt.Errorf("%w: OPENWEATHER_API_KEY is not configured", apperr.ErrUpstreamUnavailable)
	}

	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: location %q not found", apperr.ErrUpstreamUnavailable, location)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: OpenWeather API error: status %d", apperr.ErrUpstreamUnavailable, resp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: malformed weather response: %v", apperr.ErrUpstreamUnavailable, err)
	}
	return nil
}

func round(v float64) int {
	return int(math.Round(v))
}
