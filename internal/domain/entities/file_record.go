package entities

// FileRecord is the local metadata for a file relayed to an upstream host.
// The upstream host keeps the bytes; this record is only the index entry.
type FileRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	UploadedAt int64  `json:"uploadedAt"` // unix milliseconds
	Type       string `json:"type"`
}
