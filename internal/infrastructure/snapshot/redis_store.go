package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"file-relay/internal/domain/entities"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the JSON array under a single key.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

func (s *RedisStore) Name() string { return "redis" }

func (s *RedisStore) Load(ctx context.Context) ([]entities.FileRecord, error) {
	val, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entities.FileRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var records []entities.FileRecord
	if err := json.Unmarshal(val, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", s.key, err)
	}
	if records == nil {
		records = []entities.FileRecord{}
	}
	return records, nil
}

func (s *RedisStore) Save(ctx context.Context, records []entities.FileRecord) error {
	if records == nil {
		records = []entities.FileRecord{}
	}
	serialized, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, s.key, serialized, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
