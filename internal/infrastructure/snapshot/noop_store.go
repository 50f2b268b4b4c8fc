package snapshot

import (
	"context"

	"file-relay/internal/domain/entities"
)

// NoopStore disables persistence: nothing is loaded and saves are dropped.
type NoopStore struct{}

func (NoopStore) Name() string { return "none" }

func (NoopStore) Load(context.Context) ([]entities.FileRecord, error) {
	return []entities.FileRecord{}, nil
}

func (NoopStore) Save(context.Context, []entities.FileRecord) error { return nil }
