package document

import "errors"

// Sentinel errors for the decoding boundary. The ingestion orchestrator maps
// these onto its user-facing error categories; callers branch with errors.Is.
var (
	// ErrUnsupportedFormat is returned for format tags other than pdf/docx.
	ErrUnsupportedFormat = errors.New("document: unsupported format")

	// ErrPasswordProtected is returned when a PDF requires a password to open.
	ErrPasswordProtected = errors.New("document: password protected")

	// ErrCorrupt is returned when the container cannot be opened.
	ErrCorrupt = errors.New("document: corrupt or invalid document")

	// ErrDocxRead is returned when a DOCX package cannot be read.
	ErrDocxRead = errors.New("document: failed to read DOCX")

	// ErrRenderFailure is returned when no page could be rasterized.
	ErrRenderFailure = errors.New("document: failed to render pages")
)
