package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest"
	"github.com/go-chi/cors"
)

// RequireOrigin rejects cross-origin requests from anywhere but the frontend.
// Requests without an Origin header (curl, server-to-server) pass through.
func RequireOrigin(cfg config.CORSConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	allowed := normalizeOrigin(cfg.FrontendURL)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && normalizeOrigin(origin) != allowed {
				logger.Warn("origin rejected", "origin", origin, "path", r.URL.Path)
				rest.WriteError(w, application.NewOriginNotAllowedError(origin), logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORS answers preflight requests and decorates responses for the frontend origin.
// All methods and headers are allowed, with credentials.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{normalizeOrigin(cfg.FrontendURL)},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAge,
	})
}

func normalizeOrigin(origin string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(origin), "/"))
}
