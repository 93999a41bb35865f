package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/recipe-service/internal/domain"
)

const listingCacheKey = "recipes:all"

// RecipeCache caches the public recipe listing in Redis. All operations fail
// soft: a cache error is logged and the caller falls back to the database.
type RecipeCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRecipeCache builds the cache. A nil client disables caching entirely.
func NewRecipeCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RecipeCache {
	return &RecipeCache{client: client, ttl: ttl, logger: logger}
}

// GetListing returns the cached listing and whether it was present.
func (c *RecipeCache) GetListing(ctx context.Context) ([]domain.Recipe, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, listingCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("recipe listing cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var recipes []domain.Recipe
	if err := json.Unmarshal(payload, &recipes); err != nil {
		c.logger.Warn("recipe listing cache corrupt; dropping", zap.Error(err))
		_ = c.client.Del(ctx, listingCacheKey).Err()
		return nil, false
	}
	return recipes, true
}

// SetListing stores the listing with the configured TTL.
func (c *RecipeCache) SetListing(ctx context.Context, recipes []domain.Recipe) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(recipes)
	if err != nil {
		c.logger.Warn("recipe listing cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, listingCacheKey, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("recipe listing cache write failed", zap.Error(err))
	}
}

// InvalidateListing drops the cached listing after a recipe mutation.
func (c *RecipeCache) InvalidateListing(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, listingCacheKey).Err(); err != nil {
		c.logger.Warn("recipe listing cache invalidation failed", zap.Error(err))
	}
}
