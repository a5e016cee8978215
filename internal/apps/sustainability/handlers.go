package sustainability

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/principal"
	"github.com/gofiber/fiber/v2"
)

type SustainabilityHandler struct {
	service *SustainabilityService
}

func NewSustainabilityHandler(service *SustainabilityService) *SustainabilityHandler {
	return &SustainabilityHandler{service: service}
}

// Material handles GET /api/sustainability/material?name=
// The analysis never fails; unknown materials get the default score.
func (h *SustainabilityHandler) Material(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		return dto.BadRequest(c, "name query parameter is required")
	}
	return c.JSON(h.service.AnalyzeMaterial(c.UserContext(), name))
}

func (h *SustainabilityHandler) Report(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return dto.WriteError(c, err)
	}

	report, err := h.service.Report(c.UserContext(), userID)
	if err != nil {
		return dto.WriteError(c, err)
	}
	return c.JSON(report)
}
