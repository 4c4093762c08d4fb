package config

import "testing"

const defaultMaxFileSize int64 = 16 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("UPLOAD_PATH", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GCP_PROJECT_ID", "")
	t.Setenv("GCP_LOCATION", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("SUPABASE_BUCKET", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetUploadPath() != "./uploads" {
		t.Fatalf("expected default upload path ./uploads, got %s", cfg.GetUploadPath())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetGCPLocation() != "us-central1" {
		t.Fatalf("expected default GCP location us-central1, got %s", cfg.GetGCPLocation())
	}
	if cfg.GetSupabaseURL() != "" {
		t.Fatalf("expected default supabase url empty, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseBucket() != "deck-archive" {
		t.Fatalf("expected default bucket deck-archive, got %s", cfg.GetSupabaseBucket())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("UPLOAD_PATH", "/var/decks")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GCP_PROJECT_ID", "my-project")
	t.Setenv("GCP_LOCATION", "europe-west1")
	t.Setenv("SUPABASE_URL", "http://localhost:54321")
	t.Setenv("SUPABASE_ANON_KEY", "test-key")
	t.Setenv("SUPABASE_BUCKET", "archive")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetUploadPath() != "/var/decks" {
		t.Fatalf("expected upload path /var/decks, got %s", cfg.GetUploadPath())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
	if cfg.GetGCPProjectID() != "my-project" {
		t.Fatalf("expected project my-project, got %s", cfg.GetGCPProjectID())
	}
	if cfg.GetGCPLocation() != "europe-west1" {
		t.Fatalf("expected location europe-west1, got %s", cfg.GetGCPLocation())
	}
	if cfg.GetSupabaseURL() != "http://localhost:54321" {
		t.Fatalf("expected supabase url http://localhost:54321, got %s", cfg.GetSupabaseURL())
	}
	if cfg.GetSupabaseKey() != "test-key" {
		t.Fatalf("expected supabase key test-key, got %s", cfg.GetSupabaseKey())
	}
	if cfg.GetSupabaseBucket() != "archive" {
		t.Fatalf("expected bucket archive, got %s", cfg.GetSupabaseBucket())
	}
}

func TestNewConfig_InvalidMaxFileSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")

	cfg := NewConfig()
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected fallback to default, got %d", cfg.GetMaxFileSize())
	}
}
