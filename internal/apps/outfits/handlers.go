package outfits

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/principal"
	"github.com/gofiber/fiber/v2"
)

type OutfitHandler struct {
	service *OutfitService
}

func NewOutfitHandler(service *OutfitService) *OutfitHandler {
	return &OutfitHandler{service: service}
}

func (h *OutfitHandler) List(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	outfits, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(outfits)
}

func (h *OutfitHandler) Get(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	outfit, err := h.service.Get(c.UserContext(), userID, id)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(outfit)
}

func (h *OutfitHandler) Create(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	var req CreateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	outfit, err := h.service.Create(c.UserContext(), userID, req)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(outfit)
}

func (h *OutfitHandler) Update(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	var req UpdateOutfitRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	outfit, err := h.service.Update(c.UserContext(), userID, id, req)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(outfit)
}

func (h *OutfitHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	outfit, err := h.service.ToggleFavorite(c.UserContext(), userID, id)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(outfit)
}

func (h *OutfitHandler) Delete(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	if err := h.service.Delete(c.UserContext(), userID, id); err != nil {
		return dto.WriteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OutfitHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	q := RecommendationsQuery{Occasion: strings.ToLower(strings.TrimSpace(c.Query("occasion", DefaultOccasion)))}
	if q.Occasion == "" {
		q.Occasion = DefaultOccasion
	}
	if err := dto.Validate(&q); err != nil {
		return dto.WriteError(c, err)
	}

	result, err := h.service.Recommendations(c.UserContext(), userID, q.Occasion)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(result)
}
