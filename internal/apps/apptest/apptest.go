// Package apptest wires apps onto an in-memory store for handler tests.
package apptest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/events"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const Secret = "apptest-secret"

// RecordingPublisher keeps published events in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []events.Event
}

func (p *RecordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, e)
	return nil
}

func (p *RecordingPublisher) Close() error { return nil }

func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.Type
	}
	return out
}

type Harness struct {
	App    *fiber.App
	Store  *store.MemoryStore
	Deps   *apps.Deps
	Events *RecordingPublisher
}

// New returns deps backed by a memory store. Callers fill in the adapters
// they need before calling Mount.
func New(t *testing.T) *Harness {
	t.Helper()
	rec := &RecordingPublisher{}
	st := store.NewMemoryStore()
	return &Harness{
		Store:  st,
		Events: rec,
		Deps: &apps.Deps{
			Store:  st,
			Config: &config.Config{JWTSecret: Secret, JWTAccessExpiry: time.Hour, DefaultLocation: "New York"},
			Events: rec,
		},
	}
}

// Mount registers the plugins the same way routes.Setup does.
func (h *Harness) Mount(plugins ...apps.Plugin) *Harness {
	app := fiber.New()
	api := app.Group("/api")
	for _, p := range plugins {
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(api, h.Deps)
		}
	}
	protected := api.Group("", middleware.JWTProtected(h.Deps.Config))
	for _, p := range plugins {
		p.RegisterRoutes(protected, h.Deps)
	}
	h.App = app
	return h
}

// User creates a user and returns it with a signed access token.
func (h *Harness) User(t *testing.T, username string) (*models.User, string) {
	t.Helper()
	u, err := h.Store.CreateUser(context.Background(), &models.User{Username: username, Password: "x"})
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(u.ID), 10),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(Secret))
	require.NoError(t, err)
	return u, token
}

// Do sends a request with an optional JSON body and bearer token.
func (h *Harness) Do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode reads a JSON response body into out.
func Decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
