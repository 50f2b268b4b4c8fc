package dto

import "file-relay/internal/domain/entities"

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	Limit     string `json:"limit"`
	Auth      string `json:"auth"`
}

type FileListResponse struct {
	Success bool                  `json:"success"`
	Files   []entities.FileRecord `json:"files"`
}

type FileResponse struct {
	Success bool                 `json:"success"`
	File    *entities.FileRecord `json:"file"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// EmbedView feeds the /v/:id template.
type EmbedView struct {
	Title    string
	VideoURL string
	Size     string
	SiteName string
	PageURL  string
}
