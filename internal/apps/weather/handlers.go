package weather

import (
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/principal"
	"github.com/gofiber/fiber/v2"
)

type WeatherHandler struct {
	service *WeatherService
}

func NewWeatherHandler(service *WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// Current handles GET /api/weather?location=
func (h *WeatherHandler) Current(c *fiber.Ctx) error {
	resp, err := h.service.Current(c.UserContext(), c.Query("location"))
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(resp)
}

// Forecast handles GET /api/forecast?location=
func (h *WeatherHandler) Forecast(c *fiber.Ctx) error {
	resp, err := h.service.Forecast(c.UserContext(), c.Query("location"))
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(resp)
}

func (h *WeatherHandler) GetPreference(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	pref, err := h.service.Preference(c.UserContext(), userID)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(pref)
}

func (h *WeatherHandler) SetPreference(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	var req SetPreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return dto.BadRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return dto.WriteError(c, err)
	}

	pref, created, err := h.service.SetPreference(c.UserContext(), userID, req)
	if err != nil {
		return dto.WriteError(c, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(pref)
	}
	return c.JSON(pref)
}
