package rest

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
)

// ErrorResponse is returned for every caller-visible failure except internal faults.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid payment method"`
}

// InternalErrorResponse is returned with 500 responses.
type InternalErrorResponse struct {
	Detail string `json:"detail" example:"No payment method ID returned from Goody API"`
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	svcErr := application.TranslateError(err)

	if svcErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", svcErr.Code,
			"status", svcErr.HTTPStatus,
			"error", err,
		)
	}

	if svcErr.HTTPStatus == http.StatusInternalServerError {
		WriteJSON(w, svcErr.HTTPStatus, InternalErrorResponse{Detail: svcErr.Message})
		return
	}

	WriteJSON(w, svcErr.HTTPStatus, ErrorResponse{Error: svcErr.Message})
}
