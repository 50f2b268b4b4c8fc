package snapshot

import (
	"context"
	"sync"
	"time"

	"file-relay/internal/domain/entities"
	"file-relay/internal/domain/repositories"
	"file-relay/pkg/logger"
)

// WriteThrough saves the whole index after every Put and successful
// Delete. It is the zero-interval persistence mode.
type WriteThrough struct {
	repositories.FileRecordRepository
	store   repositories.SnapshotStore
	timeout time.Duration
	mu      sync.Mutex
}

func NewWriteThrough(inner repositories.FileRecordRepository, store repositories.SnapshotStore) *WriteThrough {
	return &WriteThrough{FileRecordRepository: inner, store: store, timeout: 30 * time.Second}
}

func (w *WriteThrough) Put(record entities.FileRecord) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.FileRecordRepository.Put(record)
	w.save()
}

func (w *WriteThrough) Delete(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	removed := w.FileRecordRepository.Delete(id)
	if removed {
		w.save()
	}
	return removed
}

func (w *WriteThrough) save() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	if err := w.store.Save(ctx, w.FileRecordRepository.List()); err != nil {
		logger.Sugar.Errorw("write-through snapshot failed", "store", w.store.Name(), "error", err)
	}
}
