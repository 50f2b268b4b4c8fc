package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	"file-relay/internal/domain/dto"
	"file-relay/internal/usecases"
	"file-relay/pkg/constants"
	"file-relay/pkg/errors"
	"file-relay/pkg/file"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FileHandlerOptions struct {
	TempDir       string
	Domain        string
	SiteName      string
	ProtectDelete bool
}

type FileHandler struct {
	uploadService  usecases.UploadService
	cleanupService usecases.CleanupService
	opts           FileHandlerOptions
}

func NewFileHandler(uploadService usecases.UploadService, cleanupService usecases.CleanupService, opts FileHandlerOptions) *FileHandler {
	if opts.SiteName == "" {
		opts.SiteName = "File Manager"
	}
	return &FileHandler{
		uploadService:  uploadService,
		cleanupService: cleanupService,
		opts:           opts,
	}
}

// Health
//
// @Summary      Health check
// @Description  Reports the upstream host, size limit and auth policy
// @Tags         System
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /api/health [get]
func (h *FileHandler) Health(c *fiber.Ctx) error {
	auth := "required for upload"
	if h.opts.ProtectDelete {
		auth = "required for upload and delete"
	}
	return c.JSON(dto.HealthResponse{
		Status:    constants.StatusOK,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Storage:   h.uploadService.HostName(),
		Limit:     file.FormatBytes(h.uploadService.MaxFileSize(), 0),
		Auth:      auth,
	})
}

// ListFiles
//
// @Summary      List files
// @Description  Returns every indexed file, newest first
// @Tags         Files
// @Produce      json
// @Success      200  {object}  dto.FileListResponse
// @Router       /api/files [get]
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	return c.JSON(dto.FileListResponse{
		Success: true,
		Files:   h.uploadService.List(),
	})
}

// Upload
//
// @Summary      Upload a file
// @Description  Spools the file, relays it to the upstream host and indexes the direct URL
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Security     ApiKeyAuth
// @Param        file  formData  file  true  "File to upload"
// @Success      200   {object}  dto.FileResponse
// @Failure      400   {object}  dto.ErrorResponse  "No file uploaded"
// @Failure      401   {object}  dto.ErrorResponse  "Invalid or missing API key"
// @Failure      413   {object}  dto.ErrorResponse  "File too large"
// @Failure      500   {object}  dto.ErrorResponse  "Upstream failure"
// @Router       /api/files/upload [post]
func (h *FileHandler) Upload(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return errors.HandleError(c, errors.ErrMissingFile(nil))
	}
	if header.Size > h.uploadService.MaxFileSize() {
		return errors.HandleError(c, errors.ErrFileTooLarge(header.Size, h.uploadService.MaxFileSize()))
	}

	tmpPath := filepath.Join(h.opts.TempDir, uuid.NewString()+"-"+filepath.Base(header.Filename))
	defer h.cleanupService.RemoveTempFile(tmpPath)

	if err := c.SaveFile(header, tmpPath); err != nil {
		return errors.HandleError(c, errors.ErrTmpFile(err))
	}

	record, err := h.uploadService.Upload(c.UserContext(), tmpPath, header.Filename)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(dto.FileResponse{Success: true, File: record})
}

// DeleteFile
//
// @Summary      Remove a file from the index
// @Description  The copy on the upstream host is left untouched
// @Tags         Files
// @Produce      json
// @Param        id   path      string  true  "File ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/files/{id} [delete]
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	h.uploadService.Delete(c.Params("id"))
	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "File deleted from list",
	})
}

// GetFile
//
// @Summary      File info
// @Tags         Files
// @Produce      json
// @Param        id   path      string  true  "File ID"
// @Success      200  {object}  dto.FileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/{id} [get]
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
	record, err := h.uploadService.GetInfo(c.Params("id"))
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(dto.FileResponse{Success: true, File: record})
}

// Embed
//
// @Summary      Video embed page
// @Description  HTML page with Open Graph and Twitter Card player metadata
// @Tags         Embed
// @Produce      html
// @Param        id   path      string  true  "File ID"
// @Success      200  {string}  string
// @Failure      404  {string}  string  "File not found"
// @Router       /v/{id} [get]
func (h *FileHandler) Embed(c *fiber.Ctx) error {
	record, err := h.uploadService.GetInfo(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("File not found")
	}

	return c.Render("embed", dto.EmbedView{
		Title:    record.Name,
		VideoURL: record.URL,
		Size:     file.FormatBytes(record.Size, 2),
		SiteName: h.opts.SiteName,
		PageURL:  fmt.Sprintf("https://%s/v/%s", h.opts.Domain, record.ID),
	})
}
