package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	ocr, err := Get("ocr.json", "extract_pages")
	require.NoError(t, err)
	assert.Contains(t, ocr, "order")

	opt, err := Get("optimization.json", "optimize_cv")
	require.NoError(t, err)
	assert.Contains(t, opt, "{{.CvText}}")
	assert.Contains(t, opt, "{{.JobDescription}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("ocr.json", "nope")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract_pages")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("CV: {{.CvText}} JD: {{.JobDescription}}", map[string]string{
		"CvText":         "my cv",
		"JobDescription": "the job",
	})
	assert.Equal(t, "CV: my cv JD: the job", result)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	result := Format("hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "hello {{.Name}}", result)
}
