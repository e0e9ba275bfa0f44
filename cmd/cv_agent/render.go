package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/export"
	"github.com/jonathan/cv-optimizer/internal/rendering"
	"github.com/jonathan/cv-optimizer/internal/types"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render optimized resume JSON to HTML or PDF",
	Long:  "Render a structured resume JSON file (produced by the optimize command) into a styled HTML document, optionally exporting it to PDF via headless Chrome.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderPDF        bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "cv.json", "Path to the resume JSON file")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "resume.html", "Path to write the rendered document")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Export to PDF instead of HTML")

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume JSON: %w", err)
	}

	var cv types.CvData
	if err := json.Unmarshal(data, &cv); err != nil {
		return fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	cv.Normalize()
	if err := cv.Validate(); err != nil {
		return fmt.Errorf("invalid resume data: %w", err)
	}

	html, err := rendering.RenderHTML(&cv)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if !renderPDF {
		if err := os.WriteFile(renderOutputFile, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Rendered resume written to %s\n", renderOutputFile)
		return nil
	}

	outPath := renderOutputFile
	if strings.HasSuffix(outPath, ".html") {
		outPath = strings.TrimSuffix(outPath, ".html") + ".pdf"
	}

	exporter := export.NewExporter(export.DefaultOptions())
	pdf, err := exporter.ExportPDF(context.Background(), html)
	if err != nil {
		return fmt.Errorf("failed to export PDF: %w", err)
	}
	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Rendered resume written to %s\n", outPath)
	return nil
}
