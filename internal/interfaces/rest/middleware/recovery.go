package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest"
)

// headerTracker remembers whether the wrapped handler already started its response.
type headerTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (t *headerTracker) WriteHeader(status int) {
	t.wroteHeader = true
	t.ResponseWriter.WriteHeader(status)
}

func (t *headerTracker) Write(b []byte) (int, error) {
	t.wroteHeader = true
	return t.ResponseWriter.Write(b)
}

func (t *headerTracker) Unwrap() http.ResponseWriter {
	return t.ResponseWriter
}

// Recovery turns a handler panic into a 500 {detail} response. If the handler had
// already started writing, the response is left as is and only the panic is logged.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tracker := &headerTracker{ResponseWriter: w}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					"request_id", w.Header().Get(RequestIDHeader),
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"response_started", tracker.wroteHeader,
					"stack", string(debug.Stack()),
				)

				if tracker.wroteHeader {
					return
				}

				err := application.NewInternalError("An internal error occurred", fmt.Errorf("panic: %v", rec))
				rest.WriteError(w, err, logger)
			}()

			next.ServeHTTP(tracker, r)
		})
	}
}
