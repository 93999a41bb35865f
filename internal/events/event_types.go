package events

import (
	"time"

	"github.com/spec-kit/recipe-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRecipeCreated EventType = "recipe_created"
	EventRecipeUpdated EventType = "recipe_updated"
	EventRecipeDeleted EventType = "recipe_deleted"
	EventUserDeleted   EventType = "user_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RecipePayload accompanies recipe lifecycle events.
type RecipePayload struct {
	RecipeID string                `json:"recipe_id"`
	OwnerID  string                `json:"owner_id"`
	Title    string                `json:"title"`
	Category domain.RecipeCategory `json:"category"`
}

// UserDeletedPayload accompanies user deletion events.
type UserDeletedPayload struct {
	UserID          string `json:"user_id"`
	OrphanedRecipes int64  `json:"orphaned_recipes"`
}
