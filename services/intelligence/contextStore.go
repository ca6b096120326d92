// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"casabot/models"

	"github.com/go-redis/redis/v8"
)

const sessionContextPrefix = "session:ctx:"

// ContextStore persists per-user conversation context between turns.
type ContextStore interface {
	Get(ctx context.Context, userID string) (models.SessionContext, error)
	Set(ctx context.Context, userID string, sess models.SessionContext) error
	Clear(ctx context.Context, userID string) error
}

type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (models.SessionContext, error) {
	key := sessionContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return models.SessionContext{}, nil
	}
	if err != nil {
		return models.SessionContext{}, err
	}
	var sess models.SessionContext
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return models.SessionContext{}, err
	}
	return sess, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, sess models.SessionContext) error {
	key := sessionContextPrefix + userID
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, sessionContextPrefix+userID).Err()
}
