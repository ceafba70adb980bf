package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/notes-service/internal/domain"
	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

// RequireRole ensures the authenticated caller carries the given role.
// It must be composed after Middleware.Handle; absent claims indicate a route
// wiring mistake and are rejected outright.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Role != role {
			return apperrors.NewForbidden()
		}
		return c.Next()
	}
}
