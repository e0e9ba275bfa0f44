package optimization

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	"github.com/jonathan/cv-optimizer/internal/llm"
)

type fakeClient struct {
	jsonCalls int
	gotPrompt string
	gotSchema *genai.Schema
	response  string
	err       error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	return "", fmt.Errorf("unexpected GenerateContent call")
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, schema *genai.Schema, _ llm.ModelTier) (string, error) {
	f.jsonCalls++
	f.gotPrompt = prompt
	f.gotSchema = schema
	return f.response, f.err
}

func (f *fakeClient) GenerateVision(_ context.Context, _ string, _ []llm.ImagePart, _ llm.ModelTier) (string, error) {
	return "", fmt.Errorf("unexpected GenerateVision call")
}

func (f *fakeClient) Close() error { return nil }

const wellFormedResponse = `{
  "fullName": "Jane Doe",
  "contactInfo": {"email": "jane@example.com", "phone": "+1 555 0100", "linkedin": "linkedin.com/in/janedoe", "location": "Portland, OR"},
  "summary": "Backend engineer with 8 years of experience in Go services.",
  "workExperience": [
    {"jobTitle": "Senior Engineer", "company": "Acme", "dates": "2019 - Present",
     "responsibilities": ["Reduced p99 latency by 40%", "Led a team of four engineers"]},
    {"jobTitle": "Engineer", "company": "Initech", "dates": "2015 - 2019",
     "responsibilities": ["Built the invoicing pipeline"]}
  ],
  "education": [
    {"institution": "State University", "degree": "BSc Computer Science", "dates": "2011 - 2015"}
  ],
  "skills": ["Go", "PostgreSQL", "Kubernetes"]
}`

func TestOptimize_WellFormedOutput(t *testing.T) {
	client := &fakeClient{response: wellFormedResponse}
	r := NewRequester(client)

	cv, err := r.Optimize(context.Background(), "my cv text", "the job description")
	require.NoError(t, err)

	assert.Equal(t, 1, client.jsonCalls, "exactly one generation call")
	assert.Equal(t, "Jane Doe", cv.FullName)
	require.Len(t, cv.WorkExperience, 2)
	assert.Equal(t, "Senior Engineer", cv.WorkExperience[0].JobTitle, "source order preserved")
	assert.Equal(t, "Engineer", cv.WorkExperience[1].JobTitle)
	assert.Equal(t, []string{"Reduced p99 latency by 40%", "Led a team of four engineers"},
		cv.WorkExperience[0].Responsibilities)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, cv.Skills)
}

func TestOptimize_EmbedsBothInputsInPrompt(t *testing.T) {
	client := &fakeClient{response: wellFormedResponse}
	r := NewRequester(client)

	_, err := r.Optimize(context.Background(), "CV BODY MARKER", "JOB POSTING MARKER")
	require.NoError(t, err)

	assert.Contains(t, client.gotPrompt, "CV BODY MARKER")
	assert.Contains(t, client.gotPrompt, "JOB POSTING MARKER")
	assert.NotNil(t, client.gotSchema, "schema-constrained output requested")
}

func TestOptimize_MalformedOutput(t *testing.T) {
	client := &fakeClient{response: "I'm sorry, I cannot help with that."}
	r := NewRequester(client)

	cv, err := r.Optimize(context.Background(), "cv", "job")
	assert.ErrorIs(t, err, ErrMalformedOutput)
	assert.Nil(t, cv, "no partially filled CvData on failure")
}

func TestOptimize_SchemaViolatingOutput(t *testing.T) {
	// Well-formed JSON that drops a required field.
	client := &fakeClient{response: `{"fullName": "Jane Doe"}`}
	r := NewRequester(client)

	cv, err := r.Optimize(context.Background(), "cv", "job")
	assert.ErrorIs(t, err, ErrMalformedOutput)
	assert.Nil(t, cv)
}

func TestOptimize_MarkdownWrappedOutputAccepted(t *testing.T) {
	client := &fakeClient{response: "```json\n" + wellFormedResponse + "\n```"}
	r := NewRequester(client)

	cv, err := r.Optimize(context.Background(), "cv", "job")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", cv.FullName)
}

func TestOptimize_CredentialFailure(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("call failed: %w",
		&googleapi.Error{Code: http.StatusBadRequest, Message: "API key not valid"})}
	r := NewRequester(client)

	_, err := r.Optimize(context.Background(), "cv", "job")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestOptimize_TransportFailure(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("connection reset")}
	r := NewRequester(client)

	_, err := r.Optimize(context.Background(), "cv", "job")
	assert.ErrorIs(t, err, ErrGenerationFailure)
}

func TestOptimize_BlankInputRejected(t *testing.T) {
	client := &fakeClient{response: wellFormedResponse}
	r := NewRequester(client)

	_, err := r.Optimize(context.Background(), "   ", "job")
	assert.Error(t, err)
	_, err = r.Optimize(context.Background(), "cv", "\n\t")
	assert.Error(t, err)
	assert.Zero(t, client.jsonCalls, "blank input never reaches the capability")
}

func TestOptimize_NoInternalRetries(t *testing.T) {
	client := &fakeClient{err: fmt.Errorf("flaky")}
	r := NewRequester(client)

	_, _ = r.Optimize(context.Background(), "cv", "job")
	assert.Equal(t, 1, client.jsonCalls, "a single attempt per call")
}
