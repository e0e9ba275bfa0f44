package llm

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// IsCredentialError reports whether a generation failure is attributable to an
// unusable API credential rather than a transient capability fault. Gemini
// rejects bad keys with 400 INVALID_ARGUMENT ("API key not valid") and revoked
// or unauthorized keys with 401/403.
func IsCredentialError(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		msg := strings.ToLower(apiErr.Message)
		return strings.Contains(msg, "api key")
	default:
		return false
	}
}
