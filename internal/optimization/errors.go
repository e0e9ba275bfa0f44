package optimization

import (
	"errors"
	"fmt"
)

// Sentinel failure categories for one optimization attempt. All are terminal;
// callers needing resilience retry at their own layer with inputs unchanged.
var (
	// ErrMalformedOutput indicates the generation payload could not be parsed
	// or validated as the CvData schema.
	ErrMalformedOutput = errors.New("optimization: malformed generation output")

	// ErrInvalidCredential indicates the failure is attributable to an
	// unusable API credential.
	ErrInvalidCredential = errors.New("optimization: invalid API credential")

	// ErrGenerationFailure covers all other capability/transport errors.
	ErrGenerationFailure = errors.New("optimization: generation failed")
)

// wrap attaches a cause to a sentinel category.
func wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}
