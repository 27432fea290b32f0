package application_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError_ProviderResponses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "structured 400 surfaces provider message",
			status:      http.StatusBadRequest,
			body:        `{"error":"invalid payment method"}`,
			wantMessage: "invalid payment method",
		},
		{
			name:        "400 with non JSON body",
			status:      http.StatusBadRequest,
			body:        `<html>bad request</html>`,
			wantMessage: "Unknown error",
		},
		{
			name:        "400 with truncated JSON",
			status:      http.StatusBadRequest,
			body:        `{"error":`,
			wantMessage: "Unknown error",
		},
		{
			name:        "400 without error field",
			status:      http.StatusBadRequest,
			body:        `{"message":"nope"}`,
			wantMessage: "Unknown error",
		},
		{
			name:        "400 with null error field",
			status:      http.StatusBadRequest,
			body:        `{"error":null}`,
			wantMessage: "Unknown error",
		},
		{
			name:        "400 with empty error string is surfaced as is",
			status:      http.StatusBadRequest,
			body:        `{"error":""}`,
			wantMessage: "",
		},
		{
			name:        "400 with structured error value",
			status:      http.StatusBadRequest,
			body:        `{"error":{"field":"cart"}}`,
			wantMessage: `{"field":"cart"}`,
		},
		{
			name:        "401 surfaces status and raw body",
			status:      http.StatusUnauthorized,
			body:        `{"error":"bad key"}`,
			wantMessage: `Got status code: 401 with body: {"error":"bad key"}`,
		},
		{
			name:        "500 surfaces status and raw body",
			status:      http.StatusInternalServerError,
			body:        "boom",
			wantMessage: "Got status code: 500 with body: boom",
		},
		{
			name:        "200 is not a success for create calls",
			status:      http.StatusOK,
			body:        `{"id":"pm_1"}`,
			wantMessage: `Got status code: 200 with body: {"id":"pm_1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerErr := &application.ProviderError{StatusCode: tt.status, Body: tt.body}

			svcErr := application.TranslateError(fmt.Errorf("create payment method: %w", providerErr))

			require.NotNil(t, svcErr)
			assert.Equal(t, application.ErrCodeProviderRejected, svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus)
			assert.Equal(t, tt.wantMessage, svcErr.Message)
			assert.ErrorIs(t, svcErr, providerErr)
		})
	}
}

func TestTranslateError_TransportFailures(t *testing.T) {
	timeout := application.TranslateError(fmt.Errorf("%w: %w", application.ErrProviderTimeout, context.DeadlineExceeded))
	assert.Equal(t, application.ErrCodeUpstreamTimeout, timeout.Code)
	assert.Equal(t, http.StatusGatewayTimeout, timeout.HTTPStatus)

	unavailable := application.TranslateError(fmt.Errorf("%w: connection refused", application.ErrProviderUnavailable))
	assert.Equal(t, application.ErrCodeUpstreamUnavailable, unavailable.Code)
	assert.Equal(t, http.StatusBadGateway, unavailable.HTTPStatus)

	malformed := application.TranslateError(application.ErrMalformedResponse)
	assert.Equal(t, application.ErrCodeInternal, malformed.Code)
	assert.Equal(t, http.StatusInternalServerError, malformed.HTTPStatus)
}

func TestTranslateError_PassesServiceErrorsThrough(t *testing.T) {
	original := application.NewInternalError("No order batch ID returned from Goody API", nil)

	assert.Same(t, original, application.TranslateError(original))
	assert.Nil(t, application.TranslateError(nil))
}

func TestTranslateError_UnknownErrorIsInternal(t *testing.T) {
	svcErr := application.TranslateError(errors.New("something odd"))

	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
	assert.Equal(t, http.StatusInternalServerError, svcErr.HTTPStatus)
	assert.Equal(t, "An internal error occurred", svcErr.Message)
}
