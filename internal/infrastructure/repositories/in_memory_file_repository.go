package repositories

import (
	"sync"

	"file-relay/internal/domain/entities"
	"file-relay/pkg/errors"
)

type InMemoryFileRepository struct {
	mu   sync.RWMutex
	data map[string]entities.FileRecord
}

func NewInMemoryFileRepository() *InMemoryFileRepository {
	return &InMemoryFileRepository{
		data: make(map[string]entities.FileRecord),
	}
}

func (r *InMemoryFileRepository) Get(id string) (*entities.FileRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, exists := r.data[id]
	if !exists {
		return nil, errors.ErrNotFound(id)
	}
	return &record, nil
}

// List returns a copy of every record; map order, so callers sort if they care.
func (r *InMemoryFileRepository) List() []entities.FileRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]entities.FileRecord, 0, len(r.data))
	for _, record := range r.data {
		records = append(records, record)
	}
	return records
}

func (r *InMemoryFileRepository) Put(record entities.FileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.ID] = record
}

func (r *InMemoryFileRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false
	}
	delete(r.data, id)
	return true
}

// ReplaceAll swaps the whole index. Later duplicates of an ID win, matching
// a reload that inserts the snapshot array in order.
func (r *InMemoryFileRepository) ReplaceAll(records []entities.FileRecord) {
	data := make(map[string]entities.FileRecord, len(records))
	for _, record := range records {
		data[record.ID] = record
	}
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
}

func (r *InMemoryFileRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
