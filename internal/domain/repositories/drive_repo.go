package repositories

import (
	"context"

	"file-relay/internal/domain/entities"
)

// Drive is a remote folder tree the CLI manages. Paths are slash separated
// and rooted at the drive root.
type Drive interface {
	Name() string
	Connect(ctx context.Context) error
	Close() error

	List(ctx context.Context, folder string) ([]entities.DriveEntry, error)
	Upload(ctx context.Context, localPath, remotePath string) (*entities.DriveEntry, error)
	Download(ctx context.Context, remotePath, localPath string) error
	// Delete reports whether the node went to a trash folder instead of
	// being removed for good.
	Delete(ctx context.Context, remotePath string) (trashed bool, err error)
	Mkdir(ctx context.Context, folderPath string) error
	Info(ctx context.Context, remotePath string) (*entities.DriveEntry, error)
}
