package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/types"
)

func writeCvJSON(t *testing.T, dir string) string {
	t.Helper()
	cv := types.CvData{
		FullName: "Jane Doe",
		ContactInfo: types.ContactInfo{
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Lisbon, Portugal",
		},
		Summary: "Backend engineer with 6 years of Go experience.",
		Skills:  []string{"Go", "PostgreSQL"},
	}
	data, err := json.Marshal(cv)
	require.NoError(t, err)

	path := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRenderCommand_WritesHTML(t *testing.T) {
	tmpDir := t.TempDir()
	outFile := filepath.Join(tmpDir, "resume.html")

	renderInputFile = writeCvJSON(t, tmpDir)
	renderOutputFile = outFile
	renderPDF = false

	require.NoError(t, runRender(nil, nil))

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Jane Doe")
	assert.Contains(t, string(content), "jane@example.com")
}

func TestRenderCommand_MissingInputFile(t *testing.T) {
	renderInputFile = filepath.Join(t.TempDir(), "missing.json")
	renderOutputFile = filepath.Join(t.TempDir(), "resume.html")
	renderPDF = false

	err := runRender(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume JSON")
}

func TestRenderCommand_InvalidResumeData(t *testing.T) {
	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "cv.json")
	require.NoError(t, os.WriteFile(inFile, []byte(`{"fullName":""}`), 0644))

	renderInputFile = inFile
	renderOutputFile = filepath.Join(tmpDir, "resume.html")
	renderPDF = false

	err := runRender(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid resume data")
}

func TestLoadJobDescription_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	jobFile := filepath.Join(tmpDir, "job.txt")
	require.NoError(t, os.WriteFile(jobFile, []byte("Backend engineer role"), 0644))

	text, err := loadJobDescription(context.Background(), &config.Config{Job: jobFile})
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer role", text)
}
