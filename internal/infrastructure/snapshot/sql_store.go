package snapshot

import (
	"context"
	"fmt"

	"file-relay/internal/domain/entities"
	"file-relay/internal/infrastructure/db"

	"gorm.io/gorm"
)

// SQLStore mirrors the index into the file_records table. Save replaces
// every row in one transaction.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(database *gorm.DB) *SQLStore {
	return &SQLStore{db: database}
}

func (s *SQLStore) Name() string { return "sql" }

func (s *SQLStore) Load(ctx context.Context) ([]entities.FileRecord, error) {
	var rows []db.FileRecordRow
	if err := s.db.WithContext(ctx).Order("uploaded_at asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load file_records: %w", err)
	}
	records := make([]entities.FileRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	return records, nil
}

func (s *SQLStore) Save(ctx context.Context, records []entities.FileRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&db.FileRecordRow{}).Error; err != nil {
			return fmt.Errorf("clear file_records: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		// ReplaceAll semantics: later duplicates win
		byID := make(map[string]int, len(records))
		rows := make([]db.FileRecordRow, 0, len(records))
		for _, r := range records {
			if i, ok := byID[r.ID]; ok {
				rows[i] = db.RowFromRecord(r)
				continue
			}
			byID[r.ID] = len(rows)
			rows = append(rows, db.RowFromRecord(r))
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert file_records: %w", err)
		}
		return nil
	})
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
