package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "finplan:session:"

// RedisStore keeps sessions in Redis and lets key TTLs handle expiry
type RedisStore struct {
	Client *redis.Client
}

// NewRedisStore connects a store with the given options
func NewRedisStore(opt *redis.Options) *RedisStore {
	return &RedisStore{Client: redis.NewClient(opt)}
}

// Ping checks the connection
func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Get returns the session with the given id
func (r *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	b, err := r.Client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	s := &models.Session{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return s, nil
}

// Save writes the session with a TTL matching its expiry
func (r *RedisStore) Save(ctx context.Context, s *models.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	var ttl time.Duration
	if !s.ExpiresAt.IsZero() {
		ttl = time.Until(s.ExpiresAt)
		if ttl <= 0 {
			return r.Delete(ctx, s.ID)
		}
	}
	if err := r.Client.Set(ctx, redisKeyPrefix+s.ID, b, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.Client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op; Redis expires keys on its own
func (r *RedisStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

// Close releases the client connection pool
func (r *RedisStore) Close() error {
	return r.Client.Close()
}
