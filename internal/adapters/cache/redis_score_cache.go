package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"meeting-eval-service/internal/domain"
)

// Redis-backed cache for sample replay scores. Keys are fingerprints of the
// full sample input, so a hit is always consistent with a fresh replay.
type RedisScoreCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisScoreCache(client *redis.Client, ttl time.Duration) *RedisScoreCache {
	return &RedisScoreCache{Client: client, TTL: ttl}
}

func (c *RedisScoreCache) Get(ctx context.Context, key string) (domain.ScorePair, bool, error) {
	if c.Client == nil {
		return domain.ScorePair{}, false, errors.New("score cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ScorePair{}, false, nil
	}
	if err != nil {
		return domain.ScorePair{}, false, fmt.Errorf("score cache: get %q: %w", key, err)
	}

	var scores domain.ScorePair
	if err := json.Unmarshal(raw, &scores); err != nil {
		return domain.ScorePair{}, false, fmt.Errorf("score cache: decode %q: %w", key, err)
	}

	return scores, true, nil
}

func (c *RedisScoreCache) Put(ctx context.Context, key string, scores domain.ScorePair) error {
	if c.Client == nil {
		return errors.New("score cache: client is nil")
	}

	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("score cache: encode %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("score cache: set %q: %w", key, err)
	}

	return nil
}
