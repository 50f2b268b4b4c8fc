package snapshot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"file-relay/internal/domain/entities"
	"file-relay/internal/domain/repositories"
	"file-relay/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Snapshotter copies the in-memory index to a SnapshotStore: once at
// startup in the other direction, then every Interval, then once more on
// shutdown. Anything written after the last flush is lost on a crash, so
// Interval is the loss window.
type Snapshotter struct {
	repo     repositories.FileRecordRepository
	store    repositories.SnapshotStore
	Interval time.Duration
	Timeout  time.Duration

	mu      sync.Mutex
	entryID cron.EntryID
}

func NewSnapshotter(repo repositories.FileRecordRepository, store repositories.SnapshotStore, interval time.Duration) *Snapshotter {
	return &Snapshotter{
		repo:     repo,
		store:    store,
		Interval: interval,
		Timeout:  30 * time.Second,
	}
}

// Restore replaces the index with the stored snapshot. A snapshot that
// cannot be read leaves an empty index rather than failing startup.
func (s *Snapshotter) Restore(ctx context.Context) int {
	records, err := s.store.Load(ctx)
	if err != nil {
		logger.Sugar.Warnw("snapshot unreadable, starting with an empty index", "store", s.store.Name(), "error", err)
		records = []entities.FileRecord{}
	}
	s.repo.ReplaceAll(records)
	logger.Sugar.Infow("index restored", "store", s.store.Name(), "files", s.repo.Len())
	return s.repo.Len()
}

// Flush writes the current index. Flushes never overlap.
func (s *Snapshotter) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.repo.List()
	if err := s.store.Save(ctx, records); err != nil {
		return fmt.Errorf("%s snapshot: %w", s.store.Name(), err)
	}
	logger.Sugar.Debugw("index flushed", "store", s.store.Name(), "files", len(records))
	return nil
}

// Schedule registers the periodic flush on c. A non-positive Interval
// schedules nothing; pair it with WriteThrough instead.
func (s *Snapshotter) Schedule(c *cron.Cron) error {
	if s.Interval <= 0 {
		return nil
	}
	id, err := c.AddFunc("@every "+s.Interval.String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
		defer cancel()
		if err := s.Flush(ctx); err != nil {
			logger.Sugar.Errorw("periodic snapshot failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule snapshot: %w", err)
	}
	s.entryID = id
	return nil
}

// Stop removes the periodic job from c and performs a final flush.
func (s *Snapshotter) Stop(ctx context.Context, c *cron.Cron) error {
	if c != nil && s.entryID != 0 {
		c.Remove(s.entryID)
	}
	return s.Flush(ctx)
}
