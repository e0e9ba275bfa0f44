package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/document"
	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/observability"
	"github.com/jonathan/cv-optimizer/internal/ocr"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract text from a PDF or DOCX resume",
	Long:  "Extract the text content of a resume file. Scanned PDFs with no usable text layer are rasterized and sent through OCR automatically.",
	RunE:  runIngest,
}

var (
	ingestInputFile  string
	ingestFormat     string
	ingestOutputFile string
	ingestAPIKey     string
	ingestVerbose    bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInputFile, "in", "i", "", "Path to the resume file (required)")
	ingestCmd.Flags().StringVar(&ingestFormat, "format", "", "Document format (pdf or docx; inferred from the file extension when omitted)")
	ingestCmd.Flags().StringVarP(&ingestOutputFile, "out", "o", "", "Path to write the extracted text (stdout when omitted)")
	ingestCmd.Flags().StringVar(&ingestAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed progress information")
	_ = ingestCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(_ *cobra.Command, _ []string) error {
	apiKey := ingestAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	snap, err := ingestFile(ctx, ingestInputFile, ingestFormat, apiKey)
	if err != nil {
		return err
	}

	if ingestVerbose {
		observability.NewPrinter(os.Stderr).PrintIngestion(snap)
	}
	if snap.State == ingestion.StateFailed {
		return fmt.Errorf("%s", snap.Err.UserMessage())
	}

	for _, warning := range snap.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	if ingestOutputFile == "" {
		fmt.Fprintln(os.Stdout, snap.Text)
		return nil
	}
	if err := os.WriteFile(ingestOutputFile, []byte(snap.Text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Extracted text written to %s\n", ingestOutputFile)
	return nil
}

// ingestFile runs the ingestion pipeline over a file on disk. Shared by the
// ingest and optimize commands.
func ingestFile(ctx context.Context, path, formatTag, apiKey string) (ingestion.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ingestion.Snapshot{}, fmt.Errorf("failed to read resume file: %w", err)
	}

	if formatTag == "" {
		formatTag = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	format, err := document.ParseFormat(formatTag)
	if err != nil {
		return ingestion.Snapshot{}, fmt.Errorf("unsupported document format %q (expected pdf or docx)", formatTag)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return ingestion.Snapshot{}, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	orch := ingestion.NewOrchestrator(document.NewRasterizer(), ocr.NewRequester(client))
	return orch.Ingest(ctx, document.SourceDocument{Data: data, Format: format}), nil
}
