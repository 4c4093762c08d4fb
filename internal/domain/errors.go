package domain

import "errors"

// Domain errors
var (
	ErrNoFile        = errors.New("no file part in request")
	ErrEmptyFilename = errors.New("no selected file")
	ErrPDFNotFound   = errors.New("PDF file not found")
	ErrEmptyPDF      = errors.New("PDF file is empty")
	ErrNoTextContent = errors.New("no text could be extracted from the PDF")
)
