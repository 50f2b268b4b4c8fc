package entities

import "time"

const (
	EntryFile   = "file"
	EntryFolder = "folder"
)

// DriveEntry describes a node on the cloud drive used by the CLI.
type DriveEntry struct {
	Name      string
	Path      string
	Type      string
	Size      int64
	Timestamp time.Time
	// DownloadID is the backend specific handle (MEGA node hash, S3 key).
	DownloadID string
}

func (e DriveEntry) IsFolder() bool {
	return e.Type == EntryFolder
}
