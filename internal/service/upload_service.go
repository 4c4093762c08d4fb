package service

import (
	"context"
	"io"
	"os"

	"deck-diff/internal/domain"
	apperrors "deck-diff/pkg/errors"
)

// UploadService implements domain.UploadService: persist the new version,
// extract its text, locate the previous version and analyze the differences.
type UploadService struct {
	store     domain.VersionStore
	extractor domain.TextExtractor
	analyzer  domain.DifferenceAnalyzer
	archive   domain.ArchiveStore // optional, may be nil
	logger    domain.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(
	store domain.VersionStore,
	extractor domain.TextExtractor,
	analyzer domain.DifferenceAnalyzer,
	archive domain.ArchiveStore,
	logger domain.Logger,
) *UploadService {
	return &UploadService{
		store:     store,
		extractor: extractor,
		analyzer:  analyzer,
		archive:   archive,
		logger:    logger,
	}
}

// Upload runs the full flow for one deck version. Extraction failure on the
// new file rolls back the save; failure on the previous file does not.
func (s *UploadService) Upload(ctx context.Context, file io.Reader, originalName string) (*domain.UploadResult, error) {
	storedName, err := s.store.Save(file, originalName)
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to save uploaded file", err)
	}

	currentText, err := s.extractor.Extract(s.store.PathFor(storedName))
	if err != nil {
		// The store must not accumulate unusable uploads; a failed delete
		// is logged, not escalated.
		if delErr := s.store.Delete(storedName); delErr != nil {
			s.logger.Warn("Failed to roll back unusable upload", "filename", storedName, "error", delErr)
		}
		return nil, apperrors.NewExtractionError(err.Error(), err)
	}

	s.archiveStored(ctx, storedName)

	previous, ok, err := s.store.PreviousOf(storedName)
	if err != nil {
		return nil, apperrors.NewStorageError("Failed to list deck versions", err)
	}
	if !ok {
		s.logger.Info("First deck version uploaded", "filename", storedName)
		return &domain.UploadResult{
			Filename:    storedName,
			Differences: marshalReport(domain.FirstVersionReport()),
		}, nil
	}

	previousText, err := s.extractor.Extract(s.store.PathFor(previous))
	if err != nil {
		return nil, apperrors.NewAnalysisError("Failed to read previous version: "+err.Error(), err)
	}

	differences, err := s.analyzer.Analyze(ctx, previousText, currentText)
	if err != nil {
		return nil, apperrors.NewAnalysisError("Failed to analyze differences", err)
	}

	s.logger.Info("Deck versions compared", "current", storedName, "previous", previous)
	return &domain.UploadResult{
		Filename:    storedName,
		Differences: differences,
	}, nil
}

// archiveStored mirrors the stored file to remote storage when configured.
// Best-effort: errors are logged and never fail the upload.
func (s *UploadService) archiveStored(ctx context.Context, storedName string) {
	if s.archive == nil {
		return
	}
	f, err := os.Open(s.store.PathFor(storedName))
	if err != nil {
		s.logger.Warn("Failed to open stored file for archiving", "filename", storedName, "error", err)
		return
	}
	defer f.Close()
	if err := s.archive.Archive(ctx, storedName, f); err != nil {
		s.logger.Warn("Failed to archive deck version", "filename", storedName, "error", err)
	}
}
