package db

import (
	"file-relay/internal/domain/entities"

	"gorm.io/gorm"
)

// FileRecordRow is the SQL shape of entities.FileRecord.
type FileRecordRow struct {
	ID         string `gorm:"primaryKey;size:255"`
	Name       string `gorm:"size:1024;not null"`
	URL        string `gorm:"size:2048;not null"`
	Size       int64
	UploadedAt int64  `gorm:"index"`
	Type       string `gorm:"size:32"`
}

func (FileRecordRow) TableName() string { return "file_records" }

func RowFromRecord(r entities.FileRecord) FileRecordRow {
	return FileRecordRow{ID: r.ID, Name: r.Name, URL: r.URL, Size: r.Size, UploadedAt: r.UploadedAt, Type: r.Type}
}

func (row FileRecordRow) Record() entities.FileRecord {
	return entities.FileRecord{ID: row.ID, Name: row.Name, URL: row.URL, Size: row.Size, UploadedAt: row.UploadedAt, Type: row.Type}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&FileRecordRow{})
}
