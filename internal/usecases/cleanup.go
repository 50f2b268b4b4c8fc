package usecases

import (
	"os"
	"path/filepath"
	"time"

	"file-relay/pkg/errors"
	"file-relay/pkg/logger"
)

type CleanupService interface {
	// RemoveTempFile deletes one spooled upload; a missing file is not an error.
	RemoveTempFile(path string)
	CleanupOldTempFiles(maxAge time.Duration) (int, error)
}

type cleanupService struct {
	tempDir string
}

func NewCleanupService(tempDir string) CleanupService {
	return &cleanupService{
		tempDir: tempDir,
	}
}

func (s *cleanupService) RemoveTempFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Sugar.Warnw("failed to clean up temp file", "path", path, "error", err)
	}
}

// CleanupOldTempFiles removes spooled uploads left behind by crashed or
// aborted requests.
func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.ErrTmpFile(err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		path := filepath.Join(s.tempDir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			logger.Sugar.Warnw("failed to remove old temp entry", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Sugar.Infow("removed old temp files", "count", removed, "dir", s.tempDir)
	}
	return removed, nil
}
