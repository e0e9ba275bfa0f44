package ingestion

import (
	"errors"
	"fmt"

	"github.com/jonathan/cv-optimizer/internal/document"
	"github.com/jonathan/cv-optimizer/internal/ocr"
)

// Category is a user-facing ingestion failure category. Low-level decoder and
// capability errors are mapped onto exactly one category at the orchestrator
// boundary; unknown errors collapse to CategoryGenericReadFailure rather than
// leaking raw diagnostics to the presentation layer.
type Category string

// Ingestion failure categories.
const (
	CategoryUnsupportedFormat    Category = "unsupported_format"
	CategoryPasswordProtected    Category = "password_protected"
	CategoryCorruptDocument      Category = "corrupt_document"
	CategoryDocxReadFailure      Category = "docx_read_failure"
	CategoryRenderFailure        Category = "render_failure"
	CategoryOCREmptyResult       Category = "ocr_empty_result"
	CategoryOCRCapabilityFailure Category = "ocr_capability_failure"
	CategoryGenericReadFailure   Category = "generic_read_failure"
)

// userMessages are the short human-readable messages shown per category.
var userMessages = map[Category]string{
	CategoryUnsupportedFormat:    "Unsupported file format. Please upload a PDF or DOCX file.",
	CategoryPasswordProtected:    "This PDF is password protected. Please remove the password and try again.",
	CategoryCorruptDocument:      "The document could not be opened. It may be corrupt or invalid.",
	CategoryDocxReadFailure:      "The DOCX file could not be read.",
	CategoryRenderFailure:        "The document pages could not be rendered for text recognition.",
	CategoryOCREmptyResult:       "No text could be recognized in the scanned document. Try a clearer scan.",
	CategoryOCRCapabilityFailure: "Text recognition failed. Please try again.",
	CategoryGenericReadFailure:   "The file could not be read.",
}

// Error is a terminal ingestion failure. It is never retried by this layer;
// the user discards the failed attempt and retries with a new file.
type Error struct {
	Category Category
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion failed (%s): %v", e.Category, e.Cause)
	}
	return fmt.Sprintf("ingestion failed (%s)", e.Category)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the short presentation-layer message for the category.
func (e *Error) UserMessage() string {
	if msg, ok := userMessages[e.Category]; ok {
		return msg
	}
	return userMessages[CategoryGenericReadFailure]
}

// mapExtractionError maps decoder errors onto ingestion categories.
func mapExtractionError(err error) *Error {
	switch {
	case errors.Is(err, document.ErrUnsupportedFormat):
		return &Error{Category: CategoryUnsupportedFormat, Cause: err}
	case errors.Is(err, document.ErrPasswordProtected):
		return &Error{Category: CategoryPasswordProtected, Cause: err}
	case errors.Is(err, document.ErrDocxRead):
		return &Error{Category: CategoryDocxReadFailure, Cause: err}
	case errors.Is(err, document.ErrCorrupt):
		return &Error{Category: CategoryCorruptDocument, Cause: err}
	default:
		return &Error{Category: CategoryGenericReadFailure, Cause: err}
	}
}

// mapScanError maps failures from the rasterize-then-recognize branch.
// An empty OCR result is handled separately by the orchestrator; everything
// arriving here is either a render fault or a capability fault.
func mapScanError(err error) *Error {
	switch {
	case errors.Is(err, document.ErrPasswordProtected):
		return &Error{Category: CategoryPasswordProtected, Cause: err}
	case errors.Is(err, document.ErrCorrupt):
		return &Error{Category: CategoryCorruptDocument, Cause: err}
	case errors.Is(err, document.ErrRenderFailure), errors.Is(err, ocr.ErrNoContent):
		return &Error{Category: CategoryRenderFailure, Cause: err}
	default:
		return &Error{Category: CategoryOCRCapabilityFailure, Cause: err}
	}
}
