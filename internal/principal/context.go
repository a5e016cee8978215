// Package principal reads the authenticated user from a request.
package principal

import (
	"fmt"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/wardrobe-backend/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsKey is where the JWT middleware stores the parsed token.
const LocalsKey = "user"

// UserID extracts the user id from the sub claim of the request's token.
func UserID(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok {
		return 0, fmt.Errorf("%w: invalid token in context", apperr.ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("%w: invalid claims", apperr.ErrUnauthorized)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, fmt.Errorf("%w: missing sub claim", apperr.ErrUnauthorized)
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: malformed sub claim", apperr.ErrUnauthorized)
	}
	return uint(id), nil
}
