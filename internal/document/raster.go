package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/go-fitz"
)

// Rasterization constants. The page cap bounds processing latency and the
// size of the single OCR call; pages beyond it are silently dropped and
// surfaced to callers as a truncation warning.
const (
	// MaxOCRPages is the maximum number of pages rasterized for OCR.
	MaxOCRPages = 5
	// RasterScale is the upscaling factor over nominal resolution, kept at
	// 2.0x so small glyphs stay legible to the OCR model.
	RasterScale = 2.0
	// RasterQuality is the JPEG encoding quality (1-100).
	RasterQuality = 90

	// nominalDPI is the PDF user-space resolution.
	nominalDPI = 72.0
)

// Rasterizer renders PDF pages to encoded page images.
type Rasterizer struct{}

// NewRasterizer creates a Rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// Rasterize renders pages 1..min(pageCount, maxPages) of a PDF to JPEG bytes,
// in page order. Rendering is strictly sequential: the MuPDF context must not
// be shared across concurrent operations. An empty result is always an error,
// never a valid output.
func (r *Rasterizer) Rasterize(ctx context.Context, data []byte, maxPages int) ([]PageImage, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		if errors.Is(err, fitz.ErrNeedsPassword) {
			return nil, fmt.Errorf("%w: %v", ErrPasswordProtected, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	defer func() { _ = doc.Close() }()

	pageCount := doc.NumPage()
	if pageCount > maxPages {
		pageCount = maxPages
	}

	images := make([]PageImage, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(i, nominalDPI*RasterScale)
		if err != nil {
			continue
		}

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: RasterQuality}); err != nil {
			continue
		}

		images = append(images, PageImage{Index: i + 1, Data: buf.Bytes()})
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no page could be rasterized", ErrRenderFailure)
	}

	return images, nil
}
