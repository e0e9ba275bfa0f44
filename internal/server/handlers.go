package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-optimizer/internal/document"
	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/rendering"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// maxUploadBytes bounds the multipart upload size for /ingest.
const maxUploadBytes = 20 << 20 // 20 MB

var validate = validator.New(validator.WithRequiredStructEnabled())

// IngestResponse represents the response for /ingest
type IngestResponse struct {
	Text     string   `json:"text"`
	Warnings []string `json:"warnings,omitempty"`
}

// IngestErrorResponse carries the error taxonomy category alongside the
// user-facing message.
type IngestErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category"`
}

// OptimizeRequest represents the request body for /optimize
type OptimizeRequest struct {
	CvText         string `json:"cv_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// handleIngest accepts a multipart upload and returns the extracted text.
func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	tag := r.FormValue("format")
	if tag == "" {
		tag = strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	}
	format, err := document.ParseFormat(tag)
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, IngestErrorResponse{
			Error:    fmt.Sprintf("unsupported document format %q", tag),
			Category: string(ingestion.CategoryUnsupportedFormat),
		})
		return
	}

	snap := s.ingestor.Ingest(r.Context(), document.SourceDocument{Data: data, Format: format})
	if snap.State == ingestion.StateFailed {
		s.jsonResponse(w, HTTPStatus(snap.Err), IngestErrorResponse{
			Error:    snap.Err.UserMessage(),
			Category: string(snap.Err.Category),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, IngestResponse{
		Text:     snap.Text,
		Warnings: snap.Warnings,
	})
}

// handleOptimize tailors extracted resume text to a job description and
// returns the structured result.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("%s is required", strings.ToLower(verrs[0].Field())))
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	cv, err := s.optimizer.Optimize(r.Context(), req.CvText, req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, cv)
}

// handleExport renders a structured resume to PDF.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var cv types.CvData
	if err := json.NewDecoder(r.Body).Decode(&cv); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	cv.Normalize()
	if err := cv.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume data: "+err.Error())
		return
	}

	html, err := rendering.RenderHTML(&cv)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to render resume: "+err.Error())
		return
	}

	pdf, err := s.exporter.ExportPDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export PDF: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		return
	}
}
