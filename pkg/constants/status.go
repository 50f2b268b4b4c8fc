package constants

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

const (
	HostCatbox = "catbox"
	HostFileIO = "fileio"
)

const (
	// MaxUploadSize is the ceiling enforced before any upstream call.
	MaxUploadSize int64 = 200 * 1024 * 1024

	APIKeyHeader = "X-API-Key"
	APIKeyQuery  = "apiKey"
)
