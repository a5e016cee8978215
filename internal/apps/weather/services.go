package weather

import (
	"context"
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/openweather"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/recommend"
)

type WeatherService struct {
	deps *apps.Deps
}

func NewWeatherService(deps *apps.Deps) *WeatherService {
	return &WeatherService{deps: deps}
}

func (s *WeatherService) location(requested string) string {
	if loc := strings.TrimSpace(requested); loc != "" {
		return loc
	}
	if s.deps.Config != nil && s.deps.Config.DefaultLocation != "" {
		return s.deps.Config.DefaultLocation
	}
	return recommend.DefaultLocation
}

func (s *WeatherService) Current(ctx context.Context, location string) (*WeatherResponse, error) {
	snap, err := s.deps.Weather.Current(ctx, s.location(location))
	if err != nil {
		return nil, err
	}
	return &WeatherResponse{WeatherSnapshot: snap, OutfitHint: openweather.OutfitHint(snap.Temperature)}, nil
}

func (s *WeatherService) Forecast(ctx context.Context, location string) (*ForecastResponse, error) {
	loc := s.location(location)
	days, err := s.deps.Weather.Forecast(ctx, loc)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []models.ForecastDay{}
	}
	return &ForecastResponse{Location: loc, Days: days}, nil
}

func (s *WeatherService) Preference(ctx context.Context, userID uint) (*models.WeatherPreference, error) {
	return s.deps.Store.GetWeatherPreference(ctx, userID)
}

// SetPreference upserts the user's preference and reports whether it was
// created. The store keeps the stored unit when none is given and defaults a
// first write to metric.
func (s *WeatherService) SetPreference(ctx context.Context, userID uint, req SetPreferenceRequest) (*models.WeatherPreference, bool, error) {
	existing, err := s.deps.Store.GetWeatherPreference(ctx, userID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return nil, false, err
	}
	created := existing == nil

	pref, err := s.deps.Store.SetWeatherPreference(ctx, &models.WeatherPreference{
		UserID:         userID,
		Location:       strings.TrimSpace(req.Location),
		Unit:           req.Unit,
		MinTemperature: req.MinTemperature,
		MaxTemperature: req.MaxTemperature,
	})
	if err != nil {
		return nil, false, err
	}
	return pref, created, nil
}
