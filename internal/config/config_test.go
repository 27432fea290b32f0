package config_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/goody-commerce-relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GOODY_COMMERCE_API_KEY", "")
	t.Setenv("GOODY_COMMERCE_API_BASE_URL", "https://api.sandbox.ongoody.com")
	t.Setenv("FRONTEND_URL", "http://localhost:4001")
	t.Setenv("PORT", "4000")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 40*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://api.sandbox.ongoody.com", cfg.Provider.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "123", cfg.Provider.EndUserID)
	assert.Equal(t, "http://localhost:4001", cfg.CORS.FrontendURL)

	assert.Equal(t, "Monaco User", cfg.Order.FromName)
	assert.Equal(t, "Thanks!", cfg.Order.Message)
	assert.Empty(t, cfg.Order.SendMethod)
	assert.Equal(t, "Alena", cfg.Order.Recipient.FirstName)
	assert.Equal(t, "Kenter", cfg.Order.Recipient.LastName)
	assert.Equal(t, "94107", cfg.Order.Recipient.PostalCode)
	assert.Equal(t, "bc25af6b-bf71-4da3-a8ef-5f873e03b7d4", cfg.Order.ProductID)
	assert.Equal(t, 1, cfg.Order.Quantity)
}

func TestLoadConfig_FlatVariables(t *testing.T) {
	t.Setenv("GOODY_COMMERCE_API_KEY", "sk_test_123")
	t.Setenv("GOODY_COMMERCE_API_BASE_URL", "https://api.ongoody.com")
	t.Setenv("FRONTEND_URL", "https://shop.example.com")
	t.Setenv("PORT", "8080")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk_test_123", cfg.Provider.APIKey)
	assert.Equal(t, "https://api.ongoody.com", cfg.Provider.BaseURL)
	assert.Equal(t, "https://shop.example.com", cfg.CORS.FrontendURL)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfig_NestedOverrides(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("FRONTEND_URL", "http://localhost:4001")
	t.Setenv("GOODY_COMMERCE_API_BASE_URL", "https://api.sandbox.ongoody.com")
	t.Setenv("RELAY_PROVIDER__TIMEOUT", "5s")
	t.Setenv("RELAY_PROVIDER__END_USER_ID", "user-42")
	t.Setenv("RELAY_ORDER__RECIPIENT__CITY", "Oakland")
	t.Setenv("RELAY_ORDER__QUANTITY", "2")
	t.Setenv("RELAY_LOGGER__LEVEL", "debug")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Provider.Timeout)
	assert.Equal(t, "user-42", cfg.Provider.EndUserID)
	assert.Equal(t, "Oakland", cfg.Order.Recipient.City)
	assert.Equal(t, 2, cfg.Order.Quantity)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_InvalidBaseURL(t *testing.T) {
	t.Setenv("PORT", "4000")
	t.Setenv("FRONTEND_URL", "http://localhost:4001")
	t.Setenv("GOODY_COMMERCE_API_BASE_URL", "not a url")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "http")
	t.Setenv("FRONTEND_URL", "http://localhost:4001")
	t.Setenv("GOODY_COMMERCE_API_BASE_URL", "https://api.sandbox.ongoody.com")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestLoggerConfig_NewLogger(t *testing.T) {
	logger := config.LoggerConfig{Level: "warn", Format: "json"}.NewLogger()
	require.NotNil(t, logger)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}
