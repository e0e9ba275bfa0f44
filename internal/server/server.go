package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-optimizer/internal/document"
	"github.com/jonathan/cv-optimizer/internal/export"
	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/ocr"
	"github.com/jonathan/cv-optimizer/internal/optimization"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Ingestor runs a document through the ingestion pipeline.
type Ingestor interface {
	Ingest(ctx context.Context, doc document.SourceDocument) ingestion.Snapshot
}

// Optimizer tailors extracted resume text to a job description.
type Optimizer interface {
	Optimize(ctx context.Context, cvText, jobDescription string) (*types.CvData, error)
}

// PDFExporter converts rendered HTML into a PDF document.
type PDFExporter interface {
	ExportPDF(ctx context.Context, html string) ([]byte, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	ingestor   Ingestor
	optimizer  Optimizer
	exporter   PDFExporter
	llmClient  llm.Client
}

// Config holds server configuration
type Config struct {
	Port   int
	APIKey string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	s := &Server{
		ingestor:  ingestion.NewOrchestrator(document.NewRasterizer(), ocr.NewRequester(client)),
		optimizer: optimization.NewRequester(client),
		exporter:  export.NewExporter(export.DefaultOptions()),
		llmClient: client,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.routes()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for OCR and generation calls
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux. Split out so handler tests can exercise
// routing without constructing an LLM client.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /ingest", s.handleIngest)
	mux.HandleFunc("POST /optimize", s.handleOptimize)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()
	if s.llmClient != nil {
		s.llmClient.Close()
	}
	log.Println("Server stopped")
	return err
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
