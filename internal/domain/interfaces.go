package domain

import (
	"context"
	"encoding/json"
	"io"
)

// TextExtractor extracts the full text content of a PDF on disk.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// VersionStore is the directory-backed collection of uploaded deck versions.
// Ordering is implicit in the timestamp-prefixed filenames: a lexicographic
// sort is also chronological. Two uploads racing between Save and PreviousOf
// can observe each other; the interface exists so a stricter sequencing
// strategy can replace the filename scheme without touching callers.
type VersionStore interface {
	// Save writes the stream under a sanitized, timestamp-prefixed name
	// and returns the stored filename.
	Save(file io.Reader, originalName string) (string, error)

	// ListVersions returns all stored .pdf filenames sorted ascending.
	ListVersions() ([]string, error)

	// PreviousOf returns the version preceding current, or false when
	// current is the only stored version.
	PreviousOf(current string) (string, bool, error)

	// Delete removes a stored version. Used to roll back failed uploads.
	Delete(name string) error

	// PathFor returns the absolute path of a stored version.
	PathFor(name string) string
}

// ArchiveStore mirrors uploaded files to remote storage. Best-effort only;
// callers must not fail an upload on archive errors.
type ArchiveStore interface {
	Archive(ctx context.Context, storedName string, file io.Reader) error
}

// CompletionClient sends one prompt to an LLM and returns the raw text reply.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DifferenceAnalyzer compares two versions of extracted deck text. The
// returned message is always a valid JSON object: AI failures degrade to
// the fixed fallback report instead of erroring.
type DifferenceAnalyzer interface {
	Analyze(ctx context.Context, oldText, newText string) (json.RawMessage, error)
}

// UploadResult is what a successful upload returns to the client.
type UploadResult struct {
	Filename    string          `json:"filename"`
	Differences json.RawMessage `json:"differences"`
}

// UploadService orchestrates one upload: persist, extract, locate the
// previous version, analyze, respond.
type UploadService interface {
	Upload(ctx context.Context, file io.Reader, originalName string) (*UploadResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseBucket() string
}
