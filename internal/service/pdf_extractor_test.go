package service

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deck-diff/internal/domain"
)

// writePDFFixture assembles a minimal but well-formed PDF from the given
// numbered objects, with a correct xref table and trailer.
func writePDFFixture(t *testing.T, path string, objects []string) {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	extractor := NewPDFExtractor(&mockLogger{})

	_, err := extractor.Extract(filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, domain.ErrPDFNotFound) {
		t.Fatalf("expected ErrPDFNotFound, got %v", err)
	}
}

func TestExtract_SingleTextPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pdf")
	stream := "BT /F1 24 Tf 72 720 Td (Hello World) Tj ET"
	writePDFFixture(t, path, []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	})

	extractor := NewPDFExtractor(&mockLogger{})

	text, err := extractor.Extract(path)
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		t.Fatal("expected non-empty extracted text")
	}
	if !strings.Contains(text, "Hello World") {
		t.Fatalf("expected page text in output, got %q", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Fatalf("expected page text followed by a newline, got %q", text)
	}
}

func TestExtract_ZeroPagePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	writePDFFixture(t, path, []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [] /Count 0 >>",
	})

	extractor := NewPDFExtractor(&mockLogger{})

	_, err := extractor.Extract(path)
	if !errors.Is(err, domain.ErrEmptyPDF) {
		t.Fatalf("expected ErrEmptyPDF, got %v", err)
	}
}

func TestExtract_PageWithoutTextLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pdf")
	writePDFFixture(t, path, []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	})

	extractor := NewPDFExtractor(&mockLogger{})

	_, err := extractor.Extract(path)
	if !errors.Is(err, domain.ErrNoTextContent) {
		t.Fatalf("expected ErrNoTextContent, got %v", err)
	}
}

func TestExtract_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	extractor := NewPDFExtractor(&mockLogger{})

	_, err := extractor.Extract(path)
	if err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}
	if errors.Is(err, domain.ErrPDFNotFound) {
		t.Fatalf("existing file must not report not-found: %v", err)
	}
}
