// Package service implements the business logic behind the upload API.
package service

import (
	"fmt"
	"os"
	"strings"

	"deck-diff/internal/domain"

	"github.com/gen2brain/go-fitz"
)

// PDFExtractor implements domain.TextExtractor using go-fitz (MuPDF).
type PDFExtractor struct {
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// Extract returns the concatenated text of every page, each followed by a
// newline. It fails when the file is missing, has zero pages, any page
// cannot be extracted, or the trimmed result is empty (scanned-image PDFs
// with no text layer).
func (e *PDFExtractor) Extract(path string) (string, error) {
	e.logger.Debug("Starting PDF extraction", "path", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", domain.ErrPDFNotFound, path)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("error processing PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages == 0 {
		return "", domain.ErrEmptyPDF
	}

	var sb strings.Builder
	for pageNum := 0; pageNum < numPages; pageNum++ {
		pageText, err := doc.Text(pageNum)
		if err != nil {
			return "", fmt.Errorf("error processing PDF: %w", err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
		e.logger.Debug("Extracted page", "page", pageNum+1, "total", numPages, "chars", len(pageText))
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoTextContent
	}

	e.logger.Debug("PDF extraction complete", "path", path, "chars", len(text))
	return text, nil
}
