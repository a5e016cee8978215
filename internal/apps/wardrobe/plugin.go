package wardrobe

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type WardrobePlugin struct{}

func New() *WardrobePlugin {
	return &WardrobePlugin{}
}

func (p *WardrobePlugin) ID() string { return "wardrobe" }

func (p *WardrobePlugin) Models() []interface{} {
	return []interface{}{&models.WardrobeItem{}}
}

func (p *WardrobePlugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewWardrobeHandler(NewWardrobeService(deps))

	router.Get("/wardrobe", handler.List)
	router.Post("/wardrobe", handler.Create)
	router.Get("/wardrobe/:id", handler.Get)
	router.Patch("/wardrobe/:id", handler.Update)
	router.Delete("/wardrobe/:id", handler.Delete)
	router.Post("/wardrobe/:id/worn", handler.MarkWorn)
	router.Post("/analyze-clothing", handler.Analyze)
}
