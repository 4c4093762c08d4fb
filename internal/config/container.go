package config

import (
	"deck-diff/internal/domain"
	"deck-diff/internal/repository"
	"deck-diff/internal/service"
	"deck-diff/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config        domain.Config
	Logger        domain.Logger
	VersionStore  domain.VersionStore
	Extractor     domain.TextExtractor
	Analyzer      domain.DifferenceAnalyzer
	ArchiveStore  domain.ArchiveStore
	UploadService domain.UploadService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize the version store (creates the upload directory)
	versionStore, err := repository.NewFileVersionRepository(config.GetUploadPath(), appLogger)
	if err != nil {
		return nil, err
	}

	extractor := service.NewPDFExtractor(appLogger)

	// Gemini completion client via Vertex AI
	completionClient, err := repository.NewGeminiClient(config.GetGCPProjectID(), config.GetGCPLocation(), appLogger)
	if err != nil {
		return nil, err
	}
	analyzer := service.NewDiffAnalyzer(completionClient, appLogger)

	// Optional Supabase archive mirror; uploads proceed without it.
	var archive domain.ArchiveStore
	if config.GetSupabaseURL() != "" && config.GetSupabaseKey() != "" {
		archive, err = repository.NewSupabaseArchiveRepository(config, appLogger)
		if err != nil {
			appLogger.Warn("Supabase archive disabled", "error", err)
			archive = nil
		}
	}

	uploadService := service.NewUploadService(versionStore, extractor, analyzer, archive, appLogger)

	return &Container{
		Config:        config,
		Logger:        appLogger,
		VersionStore:  versionStore,
		Extractor:     extractor,
		Analyzer:      analyzer,
		ArchiveStore:  archive,
		UploadService: uploadService,
	}, nil
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetUploadService returns the upload service instance
func (c *Container) GetUploadService() domain.UploadService {
	return c.UploadService
}
