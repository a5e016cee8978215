package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/store"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store    store.Store
	driver   string
	appCount int
}

func NewHealthHandler(s store.Store, driver string, appCount int) *HealthHandler {
	return &HealthHandler{store: s, driver: driver, appCount: appCount}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status, storeStatus := "ok", "ok"
	code := fiber.StatusOK
	if err := h.store.Ping(c.UserContext()); err != nil {
		status, storeStatus = "degraded", "unhealthy: "+err.Error()
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Store:     storeStatus,
		Driver:    h.driver,
		AppCount:  h.appCount,
	})
}
