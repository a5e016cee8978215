package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequest(t *testing.T) {
	err := Validate(&RegisterRequest{Username: "em", Password: "short"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be at least 3 characters", verr.Fields["username"])
	assert.Equal(t, "must be at least 8 characters", verr.Fields["password"])

	assert.NoError(t, Validate(&RegisterRequest{Username: "emma", Password: "password123"}))
}

func TestValidate_OptionalFields(t *testing.T) {
	bad := "not-an-email"
	err := Validate(&UpdateProfileRequest{Email: &bad})
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "email")

	assert.NoError(t, Validate(&UpdateProfileRequest{}))
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Field("name", "is required"), 400, "Validation failed"},
		{"not found", fmt.Errorf("outfit 3: %w", apperr.ErrNotFound), 404, "outfit 3: not found"},
		{"forbidden", apperr.ErrForbidden, 403, "forbidden"},
		{"upstream", apperr.ErrUpstreamUnavailable, 503, "upstream unavailable"},
		{"internal", errors.New("disk on fire"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return WriteError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var body ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.True(t, body.Error)
			assert.Equal(t, tt.wantMsg, body.Message)
			if tt.wantStatus == 400 {
				assert.Equal(t, "is required", body.Errors["name"])
			}
		})
	}
}
