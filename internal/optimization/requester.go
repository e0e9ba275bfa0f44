// Package optimization implements the structured-generation contract: CV text
// plus a target job description in, a validated CvData out, or a typed
// failure. A single generation attempt per call; no partial results.
package optimization

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/cv-optimizer/internal/llm"
	"github.com/jonathan/cv-optimizer/internal/prompts"
	"github.com/jonathan/cv-optimizer/internal/schemas"
	"github.com/jonathan/cv-optimizer/internal/types"
)

// Requester issues CV optimization calls against the generation capability.
type Requester struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewRequester creates a Requester backed by the given LLM client.
func NewRequester(client llm.Client) *Requester {
	return &Requester{client: client, tier: llm.TierStandard}
}

// Optimize rewrites the CV for the target job description and returns the
// structured result. Both inputs must be non-empty after trimming; blank
// input is a caller bug, not a retried error.
func (r *Requester) Optimize(ctx context.Context, cvText, jobDescription string) (*types.CvData, error) {
	if strings.TrimSpace(cvText) == "" {
		return nil, fmt.Errorf("cv text must not be empty")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description must not be empty")
	}

	template := prompts.MustGet("optimization.json", "optimize_cv")
	prompt := prompts.Format(template, map[string]string{
		"CvText":         cvText,
		"JobDescription": jobDescription,
	})

	payload, err := r.client.GenerateJSON(ctx, prompt, CvDataSchema(), r.tier)
	if err != nil {
		if llm.IsCredentialError(err) {
			return nil, wrap(ErrInvalidCredential, err)
		}
		return nil, wrap(ErrGenerationFailure, err)
	}

	return parseCvData(payload)
}

// parseCvData validates the payload against the JSON schema, then decodes it
// and re-checks required fields on the struct. The capability is contracted
// to return schema-conforming output, but the contract is never trusted.
func parseCvData(payload string) (*types.CvData, error) {
	payload = llm.CleanJSONBlock(payload)

	if err := schemas.ValidateCvData(payload); err != nil {
		return nil, wrap(ErrMalformedOutput, err)
	}

	var cv types.CvData
	if err := json.Unmarshal([]byte(payload), &cv); err != nil {
		return nil, wrap(ErrMalformedOutput, err)
	}

	cv.Normalize()
	if err := cv.Validate(); err != nil {
		return nil, wrap(ErrMalformedOutput, err)
	}

	return &cv, nil
}
