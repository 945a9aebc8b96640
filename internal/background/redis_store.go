package background

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"covergen-utils/internal/config"
)

const taskKeyPrefix = "task:"

// RedisTaskStore implements TaskStore on Redis so task results survive
// restarts and are shared across replicas.
type RedisTaskStore struct {
	client  *redis.Client
	timeout time.Duration
	maxAge  time.Duration
}

// NewRedisTaskStore creates a Redis-backed task store from the configured
// Redis URL. Entries expire after the configured max task age.
func NewRedisTaskStore(cfg *config.Config) (*RedisTaskStore, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	maxAge := cfg.BackgroundTasks.MaxTaskAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}

	return &RedisTaskStore{
		client:  redis.NewClient(opts),
		timeout: cfg.Redis.Timeout,
		maxAge:  maxAge,
	}, nil
}

func (s *RedisTaskStore) key(processID string) string {
	return taskKeyPrefix + processID
}

func (s *RedisTaskStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *RedisTaskStore) Store(ctx context.Context, result *TaskResult) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal task result: %w", err)
	}

	if err := s.client.Set(ctx, s.key(result.ProcessID), data, s.maxAge).Err(); err != nil {
		return fmt.Errorf("failed to store task result: %w", err)
	}
	return nil
}

func (s *RedisTaskStore) Get(ctx context.Context, processID string) (*TaskResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, err := s.client.Get(ctx, s.key(processID)).Result()
	if err == redis.Nil {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task result: %w", err)
	}

	var result TaskResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task result: %w", err)
	}
	return &result, nil
}

func (s *RedisTaskStore) Update(ctx context.Context, result *TaskResult) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	exists, err := s.client.Exists(ctx, s.key(result.ProcessID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check task existence: %w", err)
	}
	if exists == 0 {
		return ErrTaskNotFound
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal task result: %w", err)
	}

	if err := s.client.Set(ctx, s.key(result.ProcessID), data, s.maxAge).Err(); err != nil {
		return fmt.Errorf("failed to update task result: %w", err)
	}
	return nil
}

func (s *RedisTaskStore) Delete(ctx context.Context, processID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	deleted, err := s.client.Del(ctx, s.key(processID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete task result: %w", err)
	}
	if deleted == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Cleanup is a no-op for Redis; key TTLs handle expiry.
func (s *RedisTaskStore) Cleanup(ctx context.Context, maxAge time.Duration) error {
	return nil
}

func (s *RedisTaskStore) List(ctx context.Context) ([]*TaskResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var results []*TaskResult
	iter := s.client.Scan(ctx, 0, taskKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get task result: %w", err)
		}

		var result TaskResult
		if err := json.Unmarshal([]byte(data), &result); err != nil {
			continue
		}
		results = append(results, &result)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan task keys: %w", err)
	}

	return results, nil
}

// Ping verifies Redis connectivity.
func (s *RedisTaskStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying Redis connection.
func (s *RedisTaskStore) Close() error {
	return s.client.Close()
}
