// Package main provides the entry point for the CV Optimizer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_agent",
	Short: "CV Optimizer pipeline CLI",
	Long:  "CV Optimizer extracts text from PDF and DOCX resumes (with OCR fallback for scanned documents), tailors the content to a job description with a schema-constrained generation call, and renders the result to HTML or PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
