package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/recipe-service/internal/api/dto"
	"github.com/spec-kit/recipe-service/internal/auth"
	"github.com/spec-kit/recipe-service/internal/domain"
	"github.com/spec-kit/recipe-service/internal/service"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

// RecipesHandler manages recipe endpoints.
type RecipesHandler struct {
	recipes *service.RecipeService
}

// NewRecipesHandler constructs handler.
func NewRecipesHandler(recipeService *service.RecipeService) *RecipesHandler {
	return &RecipesHandler{recipes: recipeService}
}

// AddRecipe handles POST /addRecipe.
func (h *RecipesHandler) AddRecipe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	input, err := parseRecipeBody(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.Create(c.Context(), principal.UserID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "recipe added successfully",
		"data":    dto.NewRecipeResponse(recipe),
	})
}

// ViewOwnRecipes handles GET /viewRecipe, listing only the caller's recipes.
func (h *RecipesHandler) ViewOwnRecipes(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	recipes, err := h.recipes.ListOwn(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecipeResponses(recipes)})
}

// UpdateRecipe handles PUT /updateRecipe/:id. Owner only.
func (h *RecipesHandler) UpdateRecipe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	input, err := parseRecipeBody(c)
	if err != nil {
		return err
	}

	recipe, err := h.recipes.Update(c.Context(), principal.UserID, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "recipe updated successfully",
		"data":    dto.NewRecipeResponse(recipe),
	})
}

// DeleteRecipe handles DELETE /deleteRecipe/:id. Owner or admin.
func (h *RecipesHandler) DeleteRecipe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.recipes.Delete(c.Context(), principal.UserID, principal.Admin, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "recipe deleted successfully"})
}

// ViewAllRecipes handles GET /viewAllRecipes. Public, no authentication.
func (h *RecipesHandler) ViewAllRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipes.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewRecipeResponses(recipes)})
}

func parseRecipeBody(c *fiber.Ctx) (service.RecipeInput, error) {
	var req dto.RecipeRequest
	if err := c.BodyParser(&req); err != nil {
		return service.RecipeInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	return service.RecipeInput{
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		ImageURL:     req.ImageURL,
		Category:     domain.RecipeCategory(req.Category),
	}, nil
}
