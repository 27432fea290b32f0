package router

import (
	"log/slog"
	"net/http"

	_ "github.com/DanielPopoola/goody-commerce-relay/docs"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires the relay routes, API docs and middleware into a single handler.
func NewRouter(cfg *config.Config, h *handlers.Handlers, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	handler := http.Handler(mux)
	handler = middleware.CORS(cfg.CORS)(handler)
	handler = middleware.RequireOrigin(cfg.CORS, logger)(handler)
	handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	return handler
}
