package apps

import (
	"strconv"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/gofiber/fiber/v2"
)

// ParamID reads a positive numeric route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Field(name, "must be a positive integer")
	}
	return uint(id), nil
}
