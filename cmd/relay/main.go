package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DanielPopoola/goody-commerce-relay/internal/application/services"
	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
	"github.com/DanielPopoola/goody-commerce-relay/internal/infrastructure/provider"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/goody-commerce-relay/internal/interfaces/rest/router"
)

//	@title			Goody Commerce Relay API
//	@version		1.0
//	@description	Relays payment method and order batch creation to the Goody commerce API.
//	@BasePath		/
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting relay service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"provider_base_url", cfg.Provider.BaseURL,
		"frontend_url", cfg.CORS.FrontendURL,
		"log_level", cfg.Logger.Level,
	)

	if cfg.Provider.APIKey == "" {
		logger.Warn("GOODY_COMMERCE_API_KEY is not set; provider calls will be rejected")
	}

	providerClient := provider.NewProviderClient(cfg.Provider, logger)

	paymentMethodService := services.NewPaymentMethodService(providerClient, cfg.Provider, logger)
	orderBatchService := services.NewOrderBatchService(providerClient, cfg.Provider, cfg.Order, logger)

	h := handlers.NewHandlers(paymentMethodService, orderBatchService, logger)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router.NewRouter(cfg, h, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
