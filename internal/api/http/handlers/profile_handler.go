package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-service/internal/api/dto"
	"github.com/spec-kit/recipe-service/internal/auth"
	"github.com/spec-kit/recipe-service/internal/service"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

// ProfileHandler serves the caller's own account record. All operations are
// scoped to the authenticated id; there is no way to address another user.
type ProfileHandler struct {
	users *service.UserService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{users: userService}
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	user, err := h.users.GetProfile(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProfileResponse{Name: user.Name, Email: user.Email, Admin: user.Admin})
}

// UpdateProfile handles PUT /profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Context(), principal.UserID, req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(dto.ProfileResponse{Name: user.Name, Email: user.Email, Admin: user.Admin})
}
