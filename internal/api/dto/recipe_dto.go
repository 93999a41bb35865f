package dto

import (
	"time"

	"github.com/spec-kit/recipe-service/internal/domain"
)

// RecipeRequest payload for creating or updating a recipe. Category values
// are validated against the domain enum in the service layer.
type RecipeRequest struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	ImageURL     string   `json:"imageUrl"`
	Category     string   `json:"category"`
}

// RecipeResponse is the public recipe shape.
type RecipeResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Ingredients  []string              `json:"ingredients"`
	Instructions string                `json:"instructions"`
	ImageURL     string                `json:"imageUrl,omitempty"`
	Category     domain.RecipeCategory `json:"category"`
	UserID       string                `json:"userId"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewRecipeResponse maps a domain recipe.
func NewRecipeResponse(recipe *domain.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:           recipe.ID,
		Title:        recipe.Title,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		ImageURL:     recipe.ImageURL,
		Category:     recipe.Category,
		UserID:       recipe.UserID,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
}

// NewRecipeResponses maps a slice of domain recipes.
func NewRecipeResponses(recipes []domain.Recipe) []RecipeResponse {
	items := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, NewRecipeResponse(&recipes[i]))
	}
	return items
}
