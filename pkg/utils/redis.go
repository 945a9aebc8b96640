package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"covergen-utils/internal/config"
	"covergen-utils/internal/logging"
	"covergen-utils/pkg/models"
)

const defaultHistoryTTL = 24 * time.Hour

// RedisClient wraps the Redis client with generation history management.
// Generated letters are stored under their letter ID so clients can fetch
// them again after the synchronous response is gone.
type RedisClient struct {
	client *redis.Client
	config *config.Config
	logger logging.Logger
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config) *RedisClient {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	return &RedisClient{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// SaveGenerationRecord stores a generated letter under its letter ID with
// the configured history TTL.
func (r *RedisClient) SaveGenerationRecord(ctx context.Context, record *models.GenerationRecord) error {
	if record.LetterID == "" {
		return fmt.Errorf("generation record has no letter ID")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal generation record: %w", err)
	}

	key := r.getLetterKey(record.LetterID)
	if err := r.client.Set(ctx, key, recordJSON, r.historyTTL()).Err(); err != nil {
		r.logger.Error("Failed to save generation record", map[string]interface{}{
			"letter_id": record.LetterID,
			"error":     err.Error(),
		})
		return NewStorageError(err.Error())
	}

	return nil
}

// GetGenerationRecord retrieves a previously generated letter by its ID.
func (r *RedisClient) GetGenerationRecord(ctx context.Context, letterID string) (*models.GenerationRecord, error) {
	key := r.getLetterKey(letterID)

	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, NewNotFoundError(fmt.Sprintf("letter %s not found", letterID))
		}
		return nil, NewStorageError(err.Error())
	}

	var record models.GenerationRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, NewStorageError(err.Error())
	}

	return &record, nil
}

// DeleteGenerationRecord removes a stored letter.
func (r *RedisClient) DeleteGenerationRecord(ctx context.Context, letterID string) error {
	return r.client.Del(ctx, r.getLetterKey(letterID)).Err()
}

// getLetterKey generates the Redis key for a stored letter
func (r *RedisClient) getLetterKey(letterID string) string {
	return fmt.Sprintf("letter:%s", letterID)
}

func (r *RedisClient) historyTTL() time.Duration {
	if ttl := r.config.Pipeline.HistoryTTL; ttl > 0 {
		return ttl
	}
	return defaultHistoryTTL
}

// IsHealthy checks if Redis is connected and healthy
func (r *RedisClient) IsHealthy(ctx context.Context) error {
	return r.Ping(ctx)
}
