package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/recipe-service/internal/repository"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

// RequireAdmin guards admin-only routes. It re-reads the caller's user record
// and checks the persisted admin flag rather than the token's embedded one, so
// a demotion takes effect before the stale token expires.
func RequireAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}

		user, err := users.GetByID(c.Context(), principal.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("user not found")
			}
			return apperrors.MapError(err)
		}
		if !user.Admin {
			return apperrors.NewForbidden("admin privileges required")
		}
		return c.Next()
	}
}
