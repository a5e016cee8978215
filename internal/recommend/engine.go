// Package recommend builds outfit candidates for a user from their wardrobe
// and the current weather at their preferred location.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
)

const (
	DefaultLocation = "New York"
	maxOutfits      = 3
	minOutfitItems  = 2
)

// Store is the subset of store.Store the engine reads from.
type Store interface {
	GetWeatherPreference(ctx context.Context, userID uint) (*models.WeatherPreference, error)
	ListWardrobeItems(ctx context.Context, userID uint) ([]models.WardrobeItem, error)
}

type WeatherSource interface {
	Current(ctx context.Context, location string) (*models.WeatherSnapshot, error)
}

// Generator proposes outfits. Implementations return an empty slice instead
// of an error when they cannot help.
type Generator interface {
	SuggestOutfits(ctx context.Context, items []models.WardrobeItem, weather *models.WeatherSnapshot, occasion string) []models.Recommendation
}

type Result struct {
	Location        string                  `json:"location"`
	Weather         *models.WeatherSnapshot `json:"weather"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

type Engine struct {
	store           Store
	weather         WeatherSource
	generator       Generator
	defaultLocation string
}

func NewEngine(store Store, weather WeatherSource, generator Generator, defaultLocation string) *Engine {
	if defaultLocation == "" {
		defaultLocation = DefaultLocation
	}
	return &Engine{
		store:           store,
		weather:         weather,
		generator:       generator,
		defaultLocation: defaultLocation,
	}
}

// Recommend returns up to three outfits for the occasion. A weather failure
// fails the whole request; an empty result is not an error.
func (e *Engine) Recommend(ctx context.Context, userID uint, occasion string) (*Result, error) {
	location, err := e.resolveLocation(ctx, userID)
	if err != nil {
		return nil, err
	}

	weather, err := e.weather.Current(ctx, location)
	if err != nil {
		if errors.Is(err, apperr.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, err)
	}

	items, err := e.store.ListWardrobeItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe: %w", err)
	}

	result := &Result{Location: location, Weather: weather, Recommendations: []models.Recommendation{}}
	if len(items) == 0 {
		return result, nil
	}

	if e.generator != nil {
		candidates := sanitize(e.generator.SuggestOutfits(ctx, items, weather, occasion), items)
		if len(candidates) > 0 {
			result.Recommendations = candidates
			return result, nil
		}
	}

	slog.Info("using rule-based recommendations", "user_id", userID, "temperature", weather.Temperature)
	result.Recommendations = Fallback(items, weather.Temperature, occasion)
	return result, nil
}

func (e *Engine) resolveLocation(ctx context.Context, userID uint) (string, error) {
	pref, err := e.store.GetWeatherPreference(ctx, userID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return e.defaultLocation, nil
	case err != nil:
		return "", fmt.Errorf("failed to load weather preference: %w", err)
	case pref.Location == "":
		return e.defaultLocation, nil
	}
	return pref.Location, nil
}

// sanitize keeps generated candidates that reference the user's own items.
// Unknown ids are dropped and a candidate left with fewer than two items is
// discarded.
func sanitize(candidates []models.Recommendation, items []models.WardrobeItem) []models.Recommendation {
	owned := make(map[uint]bool, len(items))
	for _, it := range items {
		owned[it.ID] = true
	}

	out := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		kept := make([]uint, 0, len(c.Items))
		seen := make(map[uint]bool, len(c.Items))
		for _, id := range c.Items {
			if owned[id] && !seen[id] {
				kept = append(kept, id)
				seen[id] = true
			}
		}
		if len(kept) < minOutfitItems {
			continue
		}
		c.Items = kept
		c.SustainabilityScore = clamp(c.SustainabilityScore)
		if c.Source == "" {
			c.Source = models.SourceAI
		}
		out = append(out, c)
		if len(out) == maxOutfits {
			break
		}
	}
	return out
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
