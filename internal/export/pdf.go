// Package export serializes a rendered resume document to PDF through a
// headless browser.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// Options control the printed page geometry.
type Options struct {
	// PaperWidth and PaperHeight are in inches.
	PaperWidth  float64
	PaperHeight float64
	// MarginInches is applied on all four sides.
	MarginInches float64
	Timeout      time.Duration
}

// DefaultOptions returns A4 geometry with comfortable print margins.
func DefaultOptions() Options {
	return Options{
		PaperWidth:   8.27,
		PaperHeight:  11.69,
		MarginInches: 0.4,
		Timeout:      60 * time.Second,
	}
}

// Exporter renders HTML to PDF bytes via headless Chrome.
type Exporter struct {
	opts Options
}

// NewExporter creates an Exporter with the given options.
func NewExporter(opts Options) *Exporter {
	return &Exporter{opts: opts}
}

// ExportPDF prints the HTML document to PDF bytes.
func (e *Exporter) ExportPDF(ctx context.Context, html string) ([]byte, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, e.opts.Timeout)
	defer cancelRun()

	// Chrome needs a file URL; a data URL breaks @page CSS in print mode.
	tmpDir, err := os.MkdirTemp("", "cv-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, uuid.NewString()+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write HTML file: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(e.opts.PaperWidth).
				WithPaperHeight(e.opts.PaperHeight).
				WithMarginTop(e.opts.MarginInches).
				WithMarginBottom(e.opts.MarginInches).
				WithMarginLeft(e.opts.MarginInches).
				WithMarginRight(e.opts.MarginInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print PDF: %w", err)
	}

	return pdf, nil
}
