package apps

import (
	"context"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/events"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/openweather"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/recommend"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type GarmentAnalyzer interface {
	AnalyzeGarment(ctx context.Context, imageData string) ai.GarmentAnalysis
}

type MaterialAnalyzer interface {
	AnalyzeMaterial(ctx context.Context, material string) ai.MaterialAnalysis
}

type Recommender interface {
	Recommend(ctx context.Context, userID uint, occasion string) (*recommend.Result, error)
}

// Deps are the collaborators shared by every app. main builds them once.
type Deps struct {
	Store       store.Store
	Config      *config.Config
	Garments    GarmentAnalyzer
	Materials   MaterialAnalyzer
	Weather     openweather.Provider
	Recommender Recommender
	Events      events.Publisher
}

// Publish sends an event and logs a failure instead of returning it.
func (d *Deps) Publish(ctx context.Context, event events.Event) {
	if d.Events == nil {
		return
	}
	if err := d.Events.Publish(ctx, event); err != nil {
		slog.Warn("event publish failed", "type", event.Type, "entity_id", event.EntityID, "error", err)
	}
}

// Plugin defines the interface every app must implement.
type Plugin interface {
	// ID returns the unique app identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts app-specific routes on the given Fiber group.
	// The group is already prefixed with /api and has JWT middleware applied.
	RegisterRoutes(router fiber.Router, deps *Deps)
}

// PublicPlugin extends Plugin with routes that need no token.
type PublicPlugin interface {
	Plugin

	// RegisterPublicRoutes mounts routes on the bare /api group.
	RegisterPublicRoutes(router fiber.Router, deps *Deps)
}
