package session

import (
	"context"
	"eventsBoard/internal/config"
	"eventsBoard/internal/models"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

const keyPrefix = "session:"

// RedisStore keeps each record in a hash under session:{id} with the idle TTL as expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg config.Redis) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, id string, rec Record, ttl time.Duration) error {
	key := keyPrefix + id

	fields := map[string]interface{}{
		"user_id": rec.UserID,
		"email":   rec.Email,
		"name":    rec.Name,
		"role":    string(rec.Role),
		"token":   rec.Token,
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", id, err)
	}

	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (Record, error) {
	values, err := s.client.HGetAll(ctx, keyPrefix+id).Result()
	if err != nil {
		return Record{}, fmt.Errorf("load session %s: %w", id, err)
	}

	// HGETALL on a missing key is an empty map, not redis.Nil.
	if len(values) == 0 {
		return Record{}, ErrNotFound
	}

	return Record{
		UserID: values["user_id"],
		Email:  values["email"],
		Name:   values["name"],
		Role:   models.Role(values["role"]),
		Token:  values["token"],
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}

	return nil
}
