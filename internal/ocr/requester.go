// Package ocr reconstructs text from rasterized document pages via the
// generation capability's multimodal input.
package ocr

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonathan/cv-optimizer/internal/document"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/prompts"
)

// ErrNoContent is returned when called with no page images.
var ErrNoContent = errors.New("ocr: no page images to process")

// Requester issues OCR extraction calls against the generation capability.
type Requester struct {
	client llm.Client
}

// NewRequester creates a Requester backed by the given LLM client.
func NewRequester(client llm.Client) *Requester {
	return &Requester{client: client}
}

// ExtractText reconstructs the document text from ordered page images.
// It issues exactly one generation call carrying all pages as ordered
// attachments, so the page order transmitted is the page order reconstructed.
// The model's output is returned verbatim; callers decide how to treat an
// empty result.
func (r *Requester) ExtractText(ctx context.Context, pages []document.PageImage) (string, error) {
	if len(pages) == 0 {
		return "", ErrNoContent
	}

	images := make([]llm.ImagePart, 0, len(pages))
	for _, page := range pages {
		images = append(images, llm.ImagePart{MIMESubtype: "jpeg", Data: page.Data})
	}

	prompt := prompts.MustGet("ocr.json", "extract_pages")
	text, err := r.client.GenerateVision(ctx, prompt, images, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("ocr extraction failed: %w", err)
	}

	return text, nil
}
