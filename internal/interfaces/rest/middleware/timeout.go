package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"Request timeout"}`

// jsonTimeoutWriter labels the 503 written by http.TimeoutHandler as JSON.
type jsonTimeoutWriter struct {
	http.ResponseWriter
}

func (w jsonTimeoutWriter) WriteHeader(status int) {
	if status == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w jsonTimeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Timeout bounds the whole handler. It must stay above the provider timeout so that
// provider timeouts are reported by the handler itself.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			timeoutHandler.ServeHTTP(jsonTimeoutWriter{ResponseWriter: w}, r)
		})
	}
}
