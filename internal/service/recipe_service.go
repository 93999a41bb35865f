package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/recipe-service/internal/domain"
	"github.com/spec-kit/recipe-service/internal/events"
	"github.com/spec-kit/recipe-service/internal/repository"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

// RecipeInput carries the caller-editable recipe fields.
type RecipeInput struct {
	Title        string
	Ingredients  []string
	Instructions string
	ImageURL     string
	Category     domain.RecipeCategory
}

// RecipeService applies ownership rules and validation on top of the recipe
// store. The owner is fixed at creation and never changes on update.
type RecipeService struct {
	recipes    repository.RecipeRepository
	cache      *repository.RecipeCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewRecipeService builds the service. Cache and dispatcher may be nil.
func NewRecipeService(recipes repository.RecipeRepository, cache *repository.RecipeCache, dispatcher events.Dispatcher, logger *zap.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, cache: cache, dispatcher: dispatcher, logger: logger}
}

// Create stores a new recipe owned by the caller.
func (s *RecipeService) Create(ctx context.Context, ownerID string, input RecipeInput) (*domain.Recipe, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		ImageURL:     input.ImageURL,
		Category:     input.Category,
		UserID:       ownerID,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventRecipeCreated, ownerID, recipe)
	return recipe, nil
}

// ListOwn returns the caller's recipes, newest first.
func (s *RecipeService) ListOwn(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	recipes, err := s.recipes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return recipes, nil
}

// ListAll returns every recipe, served from the cache when warm.
func (s *RecipeService) ListAll(ctx context.Context) ([]domain.Recipe, error) {
	if cached, ok := s.cache.GetListing(ctx); ok {
		s.logger.Debug("recipe listing served from cache", zap.Int("count", len(cached)))
		return cached, nil
	}

	recipes, err := s.recipes.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.SetListing(ctx, recipes)
	return recipes, nil
}

// Update replaces the editable fields of a recipe. Only the owner may update;
// admins have no override here.
func (s *RecipeService) Update(ctx context.Context, callerID, recipeID string, input RecipeInput) (*domain.Recipe, error) {
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}

	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID != callerID {
		return nil, apperrors.NewForbidden("you do not have permission to update this recipe")
	}

	recipe.Title = input.Title
	recipe.Ingredients = input.Ingredients
	recipe.Instructions = input.Instructions
	recipe.ImageURL = input.ImageURL
	recipe.Category = input.Category
	if err := s.recipes.Update(ctx, recipe); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipe", nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventRecipeUpdated, callerID, recipe)
	return recipe, nil
}

// Delete removes a recipe. Permitted for the owner or any admin.
func (s *RecipeService) Delete(ctx context.Context, callerID string, callerAdmin bool, recipeID string) error {
	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if !callerAdmin && recipe.UserID != callerID {
		return apperrors.NewForbidden("you do not have permission to delete this recipe")
	}

	if err := s.recipes.Delete(ctx, recipeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("recipe", nil)
		}
		return apperrors.MapError(err)
	}

	s.publish(ctx, events.EventRecipeDeleted, callerID, recipe)
	return nil
}

func (s *RecipeService) loadRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("recipe", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return recipe, nil
}

func (s *RecipeService) publish(ctx context.Context, eventType events.EventType, actorID string, recipe *domain.Recipe) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.RecipePayload{
			RecipeID: recipe.ID,
			OwnerID:  recipe.UserID,
			Title:    recipe.Title,
			Category: recipe.Category,
		},
	})
}

func validateRecipeInput(input RecipeInput) error {
	missing := make([]string, 0, 4)
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if len(input.Ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if strings.TrimSpace(input.Instructions) == "" {
		missing = append(missing, "instructions")
	}
	if input.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}
	if !domain.ValidCategory(input.Category) {
		return apperrors.NewValidationError("invalid category", map[string]any{"category": string(input.Category)})
	}
	return nil
}
