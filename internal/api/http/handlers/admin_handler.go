package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-service/internal/api/dto"
	"github.com/spec-kit/recipe-service/internal/auth"
	"github.com/spec-kit/recipe-service/internal/service"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

// AdminHandler exposes user management. Routes carrying this handler are
// registered behind the admin guard, which re-reads the persisted admin flag.
type AdminHandler struct {
	users *service.UserService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(userService *service.UserService) *AdminHandler {
	return &AdminHandler{users: userService}
}

// ListUsers handles GET /users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.ListUsers(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DeleteUser handles DELETE /deleteUser/:id.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.users.DeleteUser(c.Context(), principal.UserID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user deleted successfully"})
}

// UpdateUserAdmin handles PUT /updateUserAdmin/:id.
func (h *AdminHandler) UpdateUserAdmin(c *fiber.Ctx) error {
	var req dto.UpdateUserAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Admin == nil {
		return apperrors.NewValidationError("admin must be a boolean", nil)
	}

	user, err := h.users.SetAdmin(c.Context(), c.Params("id"), *req.Admin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "user updated successfully",
		"user":    dto.NewUserResponse(user),
	})
}
