package application

import (
	"errors"
	"fmt"
	"net/http"
)

// PROVIDER ERRORS (External API)

var (
	ErrProviderTimeout     = errors.New("provider request timed out")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrMalformedResponse   = errors.New("malformed provider response")
)

// ProviderError is a response from the provider with a status other than 201.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

func IsProviderError(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeProviderRejected    = "PROVIDER_REJECTED"
	ErrCodeUpstreamTimeout     = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeInternal            = "INTERNAL_ERROR"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeOriginNotAllowed    = "ORIGIN_NOT_ALLOWED"
)

const UnknownProviderError = "Unknown error"

func NewProviderRejectedError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeProviderRejected,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewUpstreamTimeoutError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamTimeout,
		Message:    "Timed out waiting for the commerce provider",
		HTTPStatus: http.StatusGatewayTimeout,
		Err:        err,
	}
}

func NewUpstreamUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamUnavailable,
		Message:    "Commerce provider is unavailable",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewInternalError reports a fault on our side or a provider contract violation.
// message is shown to the caller; err is only logged.
func NewInternalError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInvalidInputError(err error) *ServiceError {
	message := "Invalid input"
	if err != nil {
		message = err.Error()
	}
	return &ServiceError{
		Code:       ErrCodeInvalidInput,
		Message:    message,
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewOriginNotAllowedError(origin string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeOriginNotAllowed,
		Message:    fmt.Sprintf("Origin %q is not allowed", origin),
		HTTPStatus: http.StatusForbidden,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
