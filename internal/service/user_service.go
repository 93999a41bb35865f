package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/recipe-service/internal/domain"
	"github.com/spec-kit/recipe-service/internal/events"
	"github.com/spec-kit/recipe-service/internal/repository"
	apperrors "github.com/spec-kit/recipe-service/pkg/util/errorutil"
)

// UserService covers profile access and admin user management. Profile
// operations are always scoped to the caller's own id; handlers never pass a
// path-supplied id for them.
type UserService struct {
	users      repository.UserRepository
	recipes    repository.RecipeRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, recipes repository.RecipeRepository, dispatcher events.Dispatcher, logger *zap.Logger) *UserService {
	return &UserService{users: users, recipes: recipes, dispatcher: dispatcher, logger: logger}
}

// GetProfile returns the caller's own record.
func (s *UserService) GetProfile(ctx context.Context, callerID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// UpdateProfile updates the caller's own name and email.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, name, email string) (*domain.User, error) {
	user, err := s.users.UpdateProfile(ctx, callerID, name, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// ListUsers returns all accounts. Admin-only; the route guard enforces it.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// SetAdmin toggles an account's admin flag. Admin-only.
func (s *UserService) SetAdmin(ctx context.Context, userID string, admin bool) (*domain.User, error) {
	user, err := s.users.SetAdmin(ctx, userID, admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// DeleteUser removes an account. Admin-only. Recipes owned by the account are
// not cascaded; the orphan count is surfaced in the logs and the emitted
// event.
func (s *UserService) DeleteUser(ctx context.Context, actorID, userID string) error {
	orphaned, err := s.recipes.CountByOwner(ctx, userID)
	if err != nil {
		return apperrors.MapError(err)
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return apperrors.MapError(err)
	}

	if orphaned > 0 {
		s.logger.Warn("deleted user leaves orphaned recipes",
			zap.String("user_id", userID),
			zap.Int64("orphaned_recipes", orphaned),
		)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserDeleted,
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload:   events.UserDeletedPayload{UserID: userID, OrphanedRecipes: orphaned},
		})
	}
	return nil
}
