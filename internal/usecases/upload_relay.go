package usecases

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"file-relay/internal/domain/entities"
	"file-relay/internal/domain/repositories"
	"file-relay/pkg/errors"
	"file-relay/pkg/file"
	"file-relay/pkg/logger"
)

type UploadService interface {
	Upload(ctx context.Context, filePath, name string) (*entities.FileRecord, error)
	List() []entities.FileRecord
	GetInfo(id string) (*entities.FileRecord, error)
	// Delete drops the index entry only; the upstream copy is untouched.
	Delete(id string) bool
	HostName() string
	MaxFileSize() int64
}

type uploadService struct {
	repo        repositories.FileRecordRepository
	host        repositories.UpstreamHost
	maxFileSize int64
	now         func() time.Time
}

func NewUploadService(repo repositories.FileRecordRepository, host repositories.UpstreamHost, maxFileSize int64) UploadService {
	return &uploadService{
		repo:        repo,
		host:        host,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// Upload relays the local file to the upstream host and indexes the result.
// Size and existence are checked before any network traffic; the index is
// only touched once the host has answered with a usable URL.
func (s *uploadService) Upload(ctx context.Context, filePath, name string) (*entities.FileRecord, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, errors.ErrMissingFile(err)
	}
	if info.IsDir() {
		return nil, errors.ErrMissingFile(nil)
	}
	if info.Size() > s.maxFileSize {
		return nil, errors.ErrFileTooLarge(info.Size(), s.maxFileSize)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = filepath.Base(filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.ErrMissingFile(err)
	}
	defer f.Close()

	directURL, err := s.host.Upload(ctx, name, f)
	if err != nil {
		logger.Sugar.Warnw("upstream upload failed", "host", s.host.Name(), "file", name, "error", err)
		return nil, err
	}

	id := file.DeriveID(directURL)
	if id == "" {
		return nil, errors.ErrInvalidResponse(s.host.Name(), nil)
	}

	record := entities.FileRecord{
		ID:         id,
		Name:       name,
		URL:        directURL,
		Size:       info.Size(),
		UploadedAt: s.now().UnixMilli(),
		Type:       file.Classify(name),
	}
	s.repo.Put(record)
	logger.Sugar.Infow("file relayed", "id", id, "name", name, "size", record.Size, "host", s.host.Name())
	return &record, nil
}

// List returns every record, newest first.
func (s *uploadService) List() []entities.FileRecord {
	records := s.repo.List()
	sort.Slice(records, func(i, j int) bool {
		if records[i].UploadedAt != records[j].UploadedAt {
			return records[i].UploadedAt > records[j].UploadedAt
		}
		return records[i].ID < records[j].ID
	})
	return records
}

func (s *uploadService) GetInfo(id string) (*entities.FileRecord, error) {
	return s.repo.Get(id)
}

func (s *uploadService) Delete(id string) bool {
	removed := s.repo.Delete(id)
	if removed {
		logger.Sugar.Infow("file removed from index", "id", id)
	}
	return removed
}

func (s *uploadService) HostName() string { return s.host.Name() }

func (s *uploadService) MaxFileSize() int64 { return s.maxFileSize }
