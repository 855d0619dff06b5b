package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps each device session in one Redis hash.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(deviceID string) string {
	return "session:" + deviceID
}

func (s *RedisSessionStore) Get(ctx context.Context, deviceID, key string) (string, bool, error) {
	value, err := s.client.HGet(ctx, sessionKey(deviceID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}
	return value, true, nil
}

func (s *RedisSessionStore) All(ctx context.Context, deviceID string) (map[string]string, error) {
	values, err := s.client.HGetAll(ctx, sessionKey(deviceID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return values, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, deviceID, key, value string) error {
	if err := s.client.HSet(ctx, sessionKey(deviceID), key, value).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Remove(ctx context.Context, deviceID, key string) error {
	if err := s.client.HDel(ctx, sessionKey(deviceID), key).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, deviceID string) error {
	if err := s.client.Del(ctx, sessionKey(deviceID)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
