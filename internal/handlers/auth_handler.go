package handlers

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/principal"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	resp, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return dto.WriteError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return dto.WriteError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	user, err := h.authService.Me(c.UserContext(), userID)
	if err != nil {
		return dto.WriteError(c, err)
	}

	return c.JSON(user)
}

func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	user, err := h.authService.UpdateProfile(c.UserContext(), userID, &req)
	if err != nil {
		return dto.WriteError(c, err)
	}

	return c.JSON(user)
}
