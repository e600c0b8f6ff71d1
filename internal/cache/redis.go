package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cloud-ru/mcp-financing-go/internal/financing"
)

// RedisStore хранит результаты в Redis в виде JSON
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх Redis по адресу addr
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	return NewRedisStoreWithClient(redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 500 * time.Millisecond,
		ReadTimeout: 500 * time.Millisecond,
		MaxRetries:  1,
	}), ttl)
}

// NewRedisStoreWithClient оборачивает уже созданный клиент
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get возвращает промах при любой ошибке Redis: кэш не должен ломать расчет
func (s *RedisStore) Get(ctx context.Context, key string) (*financing.Result, bool) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var result financing.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *RedisStore) Set(ctx context.Context, key string, result *financing.Result) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store result in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Backend() string {
	return "redis"
}

// Close закрывает соединения клиента
func (s *RedisStore) Close() error {
	return s.client.Close()
}
