package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"naira-rate-service/internal/domain/model"
	"naira-rate-service/internal/domain/ports"
)

const redisKeyPrefix = "rate:"

// RedisStore persists rate records as JSON values without expiry. Freshness
// is judged at read time from the record timestamp, so records are kept
// around indefinitely to serve as stale fallbacks.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

func (r *RedisStore) Get(ctx context.Context, pairKey string) (model.RateRecord, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+pairKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.RateRecord{}, ports.ErrRecordNotFound
		}
		return model.RateRecord{}, fmt.Errorf("failed to read rate record: %w", err)
	}

	var record model.RateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return model.RateRecord{}, fmt.Errorf("failed to decode rate record: %w", err)
	}
	return record, nil
}

func (r *RedisStore) Put(ctx context.Context, record model.RateRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode rate record: %w", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+record.Pair, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write rate record: %w", err)
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

var _ ports.RateStore = (*RedisStore)(nil)
