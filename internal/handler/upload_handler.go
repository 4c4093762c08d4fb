// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"deck-diff/internal/domain"
	apperrors "deck-diff/pkg/errors"
)

// UploadHandler handles deck upload requests
type UploadHandler struct {
	uploadService domain.UploadService
	maxFileSize   int64
	logger        domain.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService domain.UploadService, maxFileSize int64, logger domain.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

type uploadResponse struct {
	Message     string          `json:"message"`
	Filename    string          `json:"filename"`
	Differences json.RawMessage `json:"differences"`
}

// Upload handles POST /api/upload. Validation happens before any disk
// write: file part present, filename non-empty, extension .pdf, body within
// the configured size limit.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if strings.TrimSpace(header.Filename) == "" {
		writeError(w, http.StatusBadRequest, "No selected file")
		return
	}

	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		writeError(w, http.StatusBadRequest, "Invalid file type")
		return
	}

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	result, err := h.uploadService.Upload(r.Context(), file, header.Filename)
	if err != nil {
		h.logger.Error("Upload failed", err, "filename", header.Filename)
		writeError(w, apperrors.GetStatusCode(err), errorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Message:     "File uploaded successfully",
		Filename:    result.Filename,
		Differences: result.Differences,
	})
}
