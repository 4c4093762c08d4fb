package repository

import (
	"context"
	"fmt"
	"io"

	"deck-diff/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// SupabaseArchiveRepository mirrors uploaded decks to a Supabase Storage
// bucket. It implements domain.ArchiveStore and is strictly best-effort:
// the upload flow must not fail when archiving does.
type SupabaseArchiveRepository struct {
	client *supabase.Client
	bucket string
	logger domain.Logger
}

// NewSupabaseArchiveRepository creates a new archive repository instance
func NewSupabaseArchiveRepository(config domain.Config, logger domain.Logger) (*SupabaseArchiveRepository, error) {
	supabaseURL := config.GetSupabaseURL()
	supabaseKey := config.GetSupabaseKey()

	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	logger.Info("Supabase archive initialized", "url", supabaseURL, "bucket", config.GetSupabaseBucket())
	return &SupabaseArchiveRepository{
		client: client,
		bucket: config.GetSupabaseBucket(),
		logger: logger,
	}, nil
}

// Archive uploads the file under its stored name.
func (r *SupabaseArchiveRepository) Archive(ctx context.Context, storedName string, file io.Reader) error {
	if _, err := r.client.Storage.UploadFile(r.bucket, storedName, file); err != nil {
		return fmt.Errorf("failed to archive %s: %w", storedName, err)
	}
	r.logger.Debug("Archived deck version", "filename", storedName, "bucket", r.bucket)
	return nil
}
