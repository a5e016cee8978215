package dto

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

type ErrorResponse struct {
	Error   bool              `json:"error"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
	Driver    string `json:"driver"`
	AppCount  int    `json:"app_count"`
}

// WriteError renders err with the status apperr.Status assigns to it.
// Server-side failures are logged and answered with a generic message.
func WriteError(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	resp := ErrorResponse{Error: true, Message: err.Error()}

	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		resp.Message = "Validation failed"
		resp.Errors = verr.Fields
	}

	switch status {
	case http.StatusInternalServerError:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		resp.Message = "Internal server error"
	case http.StatusServiceUnavailable:
		slog.Warn("upstream unavailable", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(resp)
}

// BadRequest answers 400 with a fixed message.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: true, Message: message})
}
