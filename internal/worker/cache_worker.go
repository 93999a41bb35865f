package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/recipe-service/internal/events"
	"github.com/spec-kit/recipe-service/internal/repository"
)

// StartCacheWorker subscribes the recipe listing cache to recipe lifecycle
// events so the public listing never serves stale data after a mutation.
func StartCacheWorker(dispatcher events.Dispatcher, cache *repository.RecipeCache, logger *zap.Logger) {
	if dispatcher == nil || cache == nil {
		return
	}

	invalidate := func(ctx context.Context, event events.Event) error {
		logger.Debug("invalidating recipe listing cache", zap.String("event", string(event.Type)))
		cache.InvalidateListing(ctx)
		return nil
	}

	dispatcher.Subscribe(events.EventRecipeCreated, invalidate)
	dispatcher.Subscribe(events.EventRecipeUpdated, invalidate)
	dispatcher.Subscribe(events.EventRecipeDeleted, invalidate)
}
