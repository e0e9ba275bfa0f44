package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/fetch"
	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/observability"
	"github.com/jonathan/cv-optimizer/internal/optimization"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Tailor a resume to a job description",
	Long:  "Extract text from a resume file, then rewrite it into structured resume JSON tailored to a job description from a local file or a URL.",
	RunE:  runOptimize,
}

var (
	optimizeConfigFile string
	optimizeResume     string
	optimizeJobFile    string
	optimizeJobURL     string
	optimizeOutputFile string
	optimizeAPIKey     string
	optimizeModel      string
	optimizeVerbose    bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeConfigFile, "config", "c", "", "Path to a JSON config file")
	optimizeCmd.Flags().StringVar(&optimizeResume, "resume", "", "Path to the resume file (PDF or DOCX)")
	optimizeCmd.Flags().StringVar(&optimizeJobFile, "job", "", "Path to a job description text file")
	optimizeCmd.Flags().StringVar(&optimizeJobURL, "job-url", "", "URL to fetch the job description from")
	optimizeCmd.Flags().StringVarP(&optimizeOutputFile, "out", "o", "cv.json", "Path to write the optimized resume JSON")
	optimizeCmd.Flags().StringVar(&optimizeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	optimizeCmd.Flags().StringVar(&optimizeModel, "model", "", "Override for the generation model name")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if optimizeConfigFile != "" {
		loaded, err := config.LoadConfig(optimizeConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override config file values.
	if optimizeResume != "" {
		cfg.Resume = optimizeResume
	}
	if optimizeJobFile != "" {
		cfg.Job = optimizeJobFile
	}
	if optimizeJobURL != "" {
		cfg.JobURL = optimizeJobURL
	}
	if optimizeAPIKey != "" {
		cfg.APIKey = optimizeAPIKey
	}
	if optimizeModel != "" {
		cfg.Model = optimizeModel
	}
	if optimizeVerbose {
		cfg.Verbose = true
	}

	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required (use --resume or the config file)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("a job description is required (use --job or --job-url)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	apiKey := cfg.APIKeyFromEnv()
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stderr)

	// Stage 1: extract text from the resume.
	snap, err := ingestFile(ctx, cfg.Resume, "", apiKey)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintIngestion(snap)
	}
	if snap.State == ingestion.StateFailed {
		return fmt.Errorf("%s", snap.Err.UserMessage())
	}
	for _, warning := range snap.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	// Stage 2: obtain the job description.
	jobDescription, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	// Stage 3: schema-constrained optimization.
	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierStandard, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	cv, err := optimization.NewRequester(client).Optimize(ctx, snap.Text, jobDescription)
	if err != nil {
		return fmt.Errorf("failed to optimize resume: %w", err)
	}
	if cfg.Verbose {
		printer.PrintCvData(cv)
	}

	jsonBytes, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outPath := optimizeOutputFile
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		outPath = filepath.Join(cfg.OutDir, filepath.Base(outPath))
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Optimized resume written to %s\n", outPath)
	return nil
}

func loadJobDescription(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Job != "" {
		content, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description file: %w", err)
		}
		return string(content), nil
	}
	text, err := fetch.JobDescription(ctx, cfg.JobURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}
