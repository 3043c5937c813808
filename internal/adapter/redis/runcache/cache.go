package runcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/dsa-judge.net/internal/core/ports/primary"
	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
	"gitlab.com/dsa-judge.net/internal/domain"
)

var _ secondary.RunCache = (*RunCache)(nil)

const defaultExpiration = 10 * time.Minute

// RunCache implements the RunCache interface with Redis
type RunCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewRunCache creates a new Redis run cache
func NewRunCache(redisClient *redis.Client, logger primary.Logger) *RunCache {
	return &RunCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// GetVerdict returns the cached verdict for key, or nil on a miss
func (c *RunCache) GetVerdict(ctx context.Context, key string) (*domain.BatchVerdict, error) {
	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		c.logger.Error("Failed to get cached verdict", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get cached verdict: %w", err)
	}

	var verdict domain.BatchVerdict
	if err := json.Unmarshal(data, &verdict); err != nil {
		c.logger.Error("Failed to unmarshal cached verdict", "key", key, "error", err)
		return nil, fmt.Errorf("failed to unmarshal cached verdict: %w", err)
	}

	return &verdict, nil
}

// SaveVerdict stores a verdict for ttl, falling back to a default expiration
func (c *RunCache) SaveVerdict(ctx context.Context, key string, verdict *domain.BatchVerdict, ttl time.Duration) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		c.logger.Error("Failed to marshal verdict", "key", key, "error", err)
		return fmt.Errorf("failed to marshal verdict: %w", err)
	}

	if ttl <= 0 {
		ttl = defaultExpiration
	}
	if err := c.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Error("Failed to save verdict", "key", key, "error", err)
		return fmt.Errorf("failed to save verdict: %w", err)
	}

	return nil
}
