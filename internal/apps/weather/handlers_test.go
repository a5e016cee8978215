package weather_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/apptest"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/weather"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Current(ctx context.Context, location string) (*models.WeatherSnapshot, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherSnapshot), args.Error(1)
}

func (m *MockProvider) Forecast(ctx context.Context, location string) ([]models.ForecastDay, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ForecastDay), args.Error(1)
}

func setup(t *testing.T) (*apptest.Harness, *MockProvider) {
	t.Helper()
	provider := new(MockProvider)
	h := apptest.New(t)
	h.Deps.Weather = provider
	return h.Mount(weather.New()), provider
}

func TestCurrentWeather(t *testing.T) {
	h, provider := setup(t)
	provider.On("Current", mock.Anything, "New York").
		Return(&models.WeatherSnapshot{Location: "New York", Temperature: 22, Condition: "Clear"}, nil).Once()
	provider.On("Current", mock.Anything, "Atlantis").
		Return(nil, fmt.Errorf("%w: location Atlantis", apperr.ErrNotFound)).Once()

	resp := h.Do(t, http.MethodGet, "/api/weather", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body weather.WeatherResponse
	apptest.Decode(t, resp, &body)
	assert.Equal(t, 22, body.Temperature)
	assert.Equal(t, "Light sweater + jeans + sneakers", body.OutfitHint)

	assert.Equal(t, http.StatusNotFound, h.Do(t, http.MethodGet, "/api/weather?location=Atlantis", "", nil).StatusCode)
	provider.AssertExpectations(t)
}

func TestForecast(t *testing.T) {
	h, provider := setup(t)
	days := []models.ForecastDay{
		{Date: "2024-11-14", Day: "Thu", Temperature: 8, Condition: "Clouds"},
		{Date: "2024-11-15", Day: "Fri", Temperature: 11, Condition: "Clear"},
	}
	provider.On("Forecast", mock.Anything, "Oslo").Return(days, nil).Once()
	provider.On("Forecast", mock.Anything, "Lima").
		Return(nil, fmt.Errorf("%w: timeout", apperr.ErrUpstreamUnavailable)).Once()

	resp := h.Do(t, http.MethodGet, "/api/forecast?location=Oslo", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body weather.ForecastResponse
	apptest.Decode(t, resp, &body)
	assert.Equal(t, "Oslo", body.Location)
	assert.Equal(t, days, body.Days)

	assert.Equal(t, http.StatusServiceUnavailable, h.Do(t, http.MethodGet, "/api/forecast?location=Lima", "", nil).StatusCode)
}

func TestWeatherPreferences(t *testing.T) {
	h, _ := setup(t)
	_, token := h.User(t, "emma")

	assert.Equal(t, http.StatusUnauthorized, h.Do(t, http.MethodGet, "/api/weather-preferences", "", nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, h.Do(t, http.MethodGet, "/api/weather-preferences", token, nil).StatusCode)

	resp := h.Do(t, http.MethodPost, "/api/weather-preferences", token, map[string]any{
		"location":        "Oslo",
		"unit":            "imperial",
		"min_temperature": 5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var first models.WeatherPreference
	apptest.Decode(t, resp, &first)
	assert.Equal(t, "imperial", first.Unit)

	resp = h.Do(t, http.MethodPost, "/api/weather-preferences", token, map[string]any{"location": "Bergen"})
	require.Equal(t, http.StatusOK, resp.StatusCode, "updating an existing preference is not a creation")
	var second models.WeatherPreference
	apptest.Decode(t, resp, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Bergen", second.Location)
	assert.Equal(t, "imperial", second.Unit, "omitted unit keeps the stored value")
	require.NotNil(t, second.MinTemperature)
	assert.Equal(t, 5, *second.MinTemperature)

	resp = h.Do(t, http.MethodPost, "/api/weather-preferences", token, map[string]any{"unit": "kelvin"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var invalid dto.ErrorResponse
	apptest.Decode(t, resp, &invalid)
	assert.Contains(t, invalid.Errors, "location")
	assert.Contains(t, invalid.Errors, "unit")
}
