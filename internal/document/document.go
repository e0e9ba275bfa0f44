// Package document provides decoding of source resume files (PDF and DOCX)
// into plain text, a scanned-document heuristic, and page rasterization for
// the OCR fallback path.
package document

import (
	"fmt"
	"strings"
)

// Format is the declared format tag of a source document.
type Format string

// Accepted source formats. Validation is by declared tag, not content sniffing.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat normalizes a format tag or MIME type into a Format.
// Returns ErrUnsupportedFormat for anything other than the two accepted types.
func ParseFormat(tag string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "pdf", "application/pdf":
		return FormatPDF, nil
	case "docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, tag)
	}
}

// SourceDocument is a binary document plus its declared format.
// It is immutable for the duration of one ingestion attempt.
type SourceDocument struct {
	Data   []byte
	Format Format
}

// ExtractionResult is the text layer pulled from a document.
// PageCount is the real page count for PDFs; DOCX has no page concept from the
// reader, so it is reported as 1 (DOCX is never scan-classified regardless).
type ExtractionResult struct {
	Text      string
	PageCount int
}

// PageImage is one rasterized page, encoded for transport. Index is 1-based
// and ordering is significant: OCR output is reconstructed in this order.
type PageImage struct {
	Index int
	Data  []byte
}

// Extract pulls the text layer from a source document.
func Extract(doc SourceDocument) (ExtractionResult, error) {
	switch doc.Format {
	case FormatPDF:
		return extractPDF(doc.Data)
	case FormatDOCX:
		return extractDOCX(doc.Data)
	default:
		return ExtractionResult{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Format)
	}
}
