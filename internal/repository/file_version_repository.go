// Package repository provides the concrete storage and external-service
// implementations behind the domain interfaces.
package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"deck-diff/internal/domain"
)

// storedNamePrefix is the layout of the timestamp prefixed to every stored
// filename. Lexicographic order of stored names is chronological because of
// this prefix.
const storedNamePrefix = "20060102_150405"

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// FileVersionRepository implements domain.VersionStore over a single flat
// directory. There is no locking: concurrent uploads may interleave between
// Save and PreviousOf, which is a known limitation of the filename scheme.
type FileVersionRepository struct {
	dir    string
	logger domain.Logger
}

// NewFileVersionRepository creates the store, ensuring the directory exists.
func NewFileVersionRepository(dir string, logger domain.Logger) (*FileVersionRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &FileVersionRepository{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save sanitizes the original filename, prefixes it with the current
// timestamp and writes the stream to disk. Returns the stored filename.
// Two saves of the same name within one second overwrite each other.
func (r *FileVersionRepository) Save(file io.Reader, originalName string) (string, error) {
	name := sanitizeFilename(originalName)
	storedName := time.Now().Format(storedNamePrefix) + "_" + name

	path := filepath.Join(r.dir, storedName)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	r.logger.Debug("Stored deck version", "filename", storedName)
	return storedName, nil
}

// ListVersions returns all stored .pdf filenames sorted lexicographically
// ascending, which is oldest-first by construction of the prefix. The
// suffix match is case-sensitive: an uploaded .PDF is stored but never
// listed, so it cannot become the previous version of a later upload.
func (r *FileVersionRepository) ListVersions() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload directory: %w", err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".pdf") {
			versions = append(versions, entry.Name())
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// PreviousOf returns the second-to-last stored version when at least two
// exist. It assumes the just-saved file sorts last, which holds as long as
// clocks are monotonic and no backdated file sits in the directory.
func (r *FileVersionRepository) PreviousOf(current string) (string, bool, error) {
	versions, err := r.ListVersions()
	if err != nil {
		return "", false, err
	}
	if len(versions) < 2 {
		return "", false, nil
	}
	return versions[len(versions)-2], true, nil
}

// Delete removes a stored version.
func (r *FileVersionRepository) Delete(name string) error {
	if err := os.Remove(filepath.Join(r.dir, name)); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// PathFor returns the absolute path of a stored version.
func (r *FileVersionRepository) PathFor(name string) string {
	return filepath.Join(r.dir, name)
}

// sanitizeFilename strips path components and replaces characters outside
// [A-Za-z0-9._-] with underscores.
func sanitizeFilename(originalName string) string {
	name := strings.TrimSpace(filepath.Base(originalName))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	// A degenerate name falls back to document.pdf rather than an empty
	// string, so the stored file still carries the suffix ListVersions
	// matches on.
	if name == "" || name == "." || name == ".." {
		name = "document.pdf"
	}
	return name
}
