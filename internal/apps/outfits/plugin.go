package outfits

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

type OutfitsPlugin struct{}

func New() *OutfitsPlugin {
	return &OutfitsPlugin{}
}

func (p *OutfitsPlugin) ID() string { return "outfits" }

func (p *OutfitsPlugin) Models() []interface{} {
	return []interface{}{&models.Outfit{}}
}

func (p *OutfitsPlugin) RegisterRoutes(router fiber.Router, deps *apps.Deps) {
	handler := NewOutfitHandler(NewOutfitService(deps))

	router.Get("/outfits", handler.List)
	router.Post("/outfits", handler.Create)
	router.Get("/outfits/:id", handler.Get)
	router.Patch("/outfits/:id", handler.Update)
	router.Delete("/outfits/:id", handler.Delete)
	router.Post("/outfits/:id/favorite", handler.ToggleFavorite)
	router.Get("/recommendations", handler.Recommendations)
}
