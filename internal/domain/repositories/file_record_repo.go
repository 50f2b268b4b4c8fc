package repositories

import "file-relay/internal/domain/entities"

// FileRecordRepository is the index of relayed files keyed by record ID.
type FileRecordRepository interface {
	Get(id string) (*entities.FileRecord, error)
	List() []entities.FileRecord
	Put(record entities.FileRecord)
	// Delete reports whether a record was removed.
	Delete(id string) bool
	ReplaceAll(records []entities.FileRecord)
	Len() int
}
