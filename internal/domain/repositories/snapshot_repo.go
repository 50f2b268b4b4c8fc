package repositories

import (
	"context"

	"file-relay/internal/domain/entities"
)

// SnapshotStore persists the whole record index at once.
// Load on a store that has never been written returns an empty slice and no error.
type SnapshotStore interface {
	Name() string
	Load(ctx context.Context) ([]entities.FileRecord, error)
	Save(ctx context.Context, records []entities.FileRecord) error
}
