package wardrobe

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/principal"
	"github.com/gofiber/fiber/v2"
)

type WardrobeHandler struct {
	service *WardrobeService
}

func NewWardrobeHandler(service *WardrobeService) *WardrobeHandler {
	return &WardrobeHandler{service: service}
}

func (h *WardrobeHandler) List(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	items, err := h.service.List(c.UserContext(), userID)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(items)
}

func (h *WardrobeHandler) Get(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	item, err := h.service.Get(c.UserContext(), userID, id)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(item)
}

func (h *WardrobeHandler) Create(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	var req CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	item, err := h.service.Create(c.UserContext(), userID, req)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *WardrobeHandler) Update(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	var req UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	item, err := h.service.Update(c.UserContext(), userID, id, req)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(item)
}

func (h *WardrobeHandler) Delete(c *fiber.Ctx) error {
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

func (h *WardrobeHandler) MarkWorn(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}
	id, err := apps.ParamID(c, "id")
	if err != nil {
		return dto.WriteError(c, err)
	}

	item, err := h.service.MarkWorn(c.UserContext(), userID, id)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(item)
}

func (h *WardrobeHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	return c.JSON(h.service.Analyze(c.UserContext(), req.ImageData))
}
