package snapshot

import (
	"context"
	"fmt"
	"io"
	"time"

	"file-relay/internal/domain/repositories"
	"file-relay/internal/infrastructure/db"
	"file-relay/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

// NewStore builds the store selected by cfg.Driver. The returned closer
// releases connections and is never nil.
func NewStore(cfg config.SnapshotConfig) (repositories.SnapshotStore, io.Closer, error) {
	switch cfg.Driver {
	case "file", "":
		return NewFileStore(cfg.Path), nopCloser{}, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		store := NewRedisStore(rdb, cfg.RedisKey)
		return store, store, nil
	case "sql":
		database, err := db.Open(cfg.SQLDialect, cfg.SQLDSN)
		if err != nil {
			return nil, nil, err
		}
		store := NewSQLStore(database)
		return store, store, nil
	case "none":
		return NoopStore{}, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot driver %q", cfg.Driver)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
