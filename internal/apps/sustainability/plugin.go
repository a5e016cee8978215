package sustainability

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/gofiber/fiber/v2"
)

type SustainabilityPlugin struct{}

func New() *SustainabilityPlugin {
	return &SustainabilityPlugin{}
}

func (p *SustainabilityPlugin) ID() string { return "sustainability" }

// Models is empty; the report reads wardrobe items.
func (p *SustainabilityPlugin) Models() []interface{} {
	return nil
}

func (p *SustainabilityPlugin) RegisterPublicRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewSustainabilityHandler(NewSustainabilityService(deps))
	router.Get("/sustainability/material", handler.Material)
}

func (p *SustainabilityPlugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewSustainabilityHandler(NewSustainabilityService(deps))
	router.Get("/sustainability/report", handler.Report)
}
