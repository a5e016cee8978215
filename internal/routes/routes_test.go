package routes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/outfits"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/sustainability"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/wardrobe"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps/weather"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/events"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	cfg := &config.Config{JWTSecret: "routes-secret", JWTAccessExpiry: time.Hour, DefaultLocation: "New York"}
	st := store.NewMemoryStore()
	deps := &apps.Deps{Store: st, Config: cfg, Events: events.NoopPublisher{}}
	plugins := []apps.Plugin{wardrobe.New(), outfits.New(), weather.New(), sustainability.New()}

	app := fiber.New()
	Setup(app, cfg,
		handlers.NewAuthHandler(services.NewAuthService(st, cfg)),
		handlers.NewHealthHandler(st, config.DriverMemory, len(plugins)),
		deps, plugins)
	return app
}

func TestSetup_PublicAndProtectedRoutes(t *testing.T) {
	app := newApp()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/api/health", fiber.StatusOK},
		{"GET", "/api/sustainability/material", fiber.StatusBadRequest},
		{"GET", "/api/wardrobe", fiber.StatusUnauthorized},
		{"GET", "/api/outfits", fiber.StatusUnauthorized},
		{"GET", "/api/recommendations", fiber.StatusUnauthorized},
		{"GET", "/api/weather-preferences", fiber.StatusUnauthorized},
		{"GET", "/api/sustainability/report", fiber.StatusUnauthorized},
		{"GET", "/api/auth/me", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestSetup_RegisterThenMe(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(`{"username":"emma","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var auth dto.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&auth))
	require.NotEmpty(t, auth.AccessToken)

	req = httptest.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.AccessToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
