package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// TranslateError maps any error raised while talking to the provider onto a ServiceError
// the REST layer can render.
func TranslateError(err error) *ServiceError {
	if err == nil {
		return nil
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr
	}

	if providerErr, ok := IsProviderError(err); ok {
		return NewProviderRejectedError(rejectionMessage(providerErr), err)
	}

	switch {
	case errors.Is(err, ErrProviderTimeout), errors.Is(err, context.DeadlineExceeded):
		return NewUpstreamTimeoutError(err)
	case errors.Is(err, ErrProviderUnavailable):
		return NewUpstreamUnavailableError(err)
	case errors.Is(err, ErrMalformedResponse):
		return NewInternalError("Malformed response from Goody API", err)
	}

	return NewInternalError("An internal error occurred", err)
}

// rejectionMessage builds the caller-facing message for a non-201 provider response.
// Only 400 bodies are trusted to carry a structured {"error": ...} message.
func rejectionMessage(e *ProviderError) string {
	if e.StatusCode != http.StatusBadRequest {
		return fmt.Sprintf("Got status code: %d with body: %s", e.StatusCode, e.Body)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(e.Body), &body); err != nil {
		return UnknownProviderError
	}

	switch v := body["error"].(type) {
	case nil:
		return UnknownProviderError
	case string:
		return v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return UnknownProviderError
		}
		return string(raw)
	}
}

