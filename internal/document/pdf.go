package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// extractPDF opens the binary as a paged document and concatenates each
// page's text layer with a newline separator. Pages are read strictly in
// order; the MuPDF context is not safe for concurrent use.
func extractPDF(data []byte) (ExtractionResult, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		if errors.Is(err, fitz.ErrNeedsPassword) {
			return ExtractionResult{}, fmt.Errorf("%w: %v", ErrPasswordProtected, err)
		}
		return ExtractionResult{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer func() { _ = doc.Close() }()

	pageCount := doc.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			// A page with an unreadable text layer contributes nothing;
			// the scan heuristic handles near-empty results downstream.
			continue
		}
		pages = append(pages, strings.TrimRight(text, "\n"))
	}

	return ExtractionResult{
		Text:      strings.Join(pages, "\n"),
		PageCount: pageCount,
	}, nil
}
