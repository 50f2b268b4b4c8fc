package usecases

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sync"

	"file-relay/internal/domain/entities"
	"file-relay/internal/domain/repositories"
	"file-relay/pkg/errors"
)

type DriveService interface {
	List(ctx context.Context, folder string) ([]entities.DriveEntry, error)
	Upload(ctx context.Context, localPath, remotePath string) (*entities.DriveEntry, error)
	// Download returns the local path written.
	Download(ctx context.Context, remotePath, localPath string) (string, error)
	// Delete reports whether the backend kept the node in its trash.
	Delete(ctx context.Context, remotePath string) (bool, error)
	Mkdir(ctx context.Context, folderPath string) error
	Info(ctx context.Context, remotePath string) (*entities.DriveEntry, error)
	Close() error
}

type sessionState int

const (
	sessionDisconnected sessionState = iota
	sessionConnected
	sessionClosed
)

// driveService connects on first use and reuses that connection. A failed
// connect is remembered and returned to every later call; nothing retries.
type driveService struct {
	drive   repositories.Drive
	mu      sync.Mutex
	state   sessionState
	connErr error
}

func NewDriveService(drive repositories.Drive) DriveService {
	return &driveService{drive: drive}
}

func (s *driveService) session(ctx context.Context) (repositories.Drive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case sessionConnected:
		return s.drive, nil
	case sessionClosed:
		if s.connErr != nil {
			return nil, s.connErr
		}
		return nil, errors.ErrSessionClosed()
	}

	if err := s.drive.Connect(ctx); err != nil {
		s.state = sessionClosed
		s.connErr = errors.ErrConnect(s.drive.Name(), err)
		return nil, s.connErr
	}
	s.state = sessionConnected
	return s.drive, nil
}

func (s *driveService) List(ctx context.Context, folder string) ([]entities.DriveEntry, error) {
	d, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	if folder == "" {
		folder = "/"
	}
	return d.List(ctx, folder)
}

func (s *driveService) Upload(ctx context.Context, localPath, remotePath string) (*entities.DriveEntry, error) {
	info, err := os.Stat(localPath)
	if err != nil || info.IsDir() {
		return nil, errors.ErrNotFound(localPath)
	}
	if remotePath == "" {
		remotePath = filepath.Base(localPath)
	}
	d, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return d.Upload(ctx, localPath, remotePath)
}

func (s *driveService) Download(ctx context.Context, remotePath, localPath string) (string, error) {
	if localPath == "" {
		localPath = filepath.Join(".", path.Base(remotePath))
	}
	d, err := s.session(ctx)
	if err != nil {
		return "", err
	}
	if err := d.Download(ctx, remotePath, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}

func (s *driveService) Delete(ctx context.Context, remotePath string) (bool, error) {
	d, err := s.session(ctx)
	if err != nil {
		return false, err
	}
	return d.Delete(ctx, remotePath)
}

func (s *driveService) Mkdir(ctx context.Context, folderPath string) error {
	d, err := s.session(ctx)
	if err != nil {
		return err
	}
	return d.Mkdir(ctx, folderPath)
}

func (s *driveService) Info(ctx context.Context, remotePath string) (*entities.DriveEntry, error) {
	d, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	return d.Info(ctx, remotePath)
}

func (s *driveService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasConnected := s.state == sessionConnected
	s.state = sessionClosed
	if wasConnected {
		return s.drive.Close()
	}
	return nil
}
