package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

// envPrefix marks nested overrides, e.g. RELAY_SERVER__WRITE_TIMEOUT=45s.
const envPrefix = "RELAY_"

// envAliases maps the flat variable names used by existing deployments onto config keys.
var envAliases = map[string]string{
	"GOODY_COMMERCE_API_KEY":      "provider.api_key",
	"GOODY_COMMERCE_API_BASE_URL": "provider.base_url",
	"FRONTEND_URL":                "cors.frontend_url",
	"PORT":                        "server.port",
}

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Provider ProviderConfig `koanf:"provider"`
	CORS     CORSConfig     `koanf:"cors"`
	Order    OrderConfig    `koanf:"order"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout  time.Duration `koanf:"request_timeout" validate:"required"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required"`
}

// ProviderConfig describes how to reach the commerce provider.
// APIKey may be empty in local setups; calls will then be rejected by the provider.
type ProviderConfig struct {
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	Timeout   time.Duration `koanf:"timeout" validate:"required"`
	EndUserID string        `koanf:"end_user_id" validate:"required"`
}

type CORSConfig struct {
	FrontendURL string `koanf:"frontend_url" validate:"required,url"`
	MaxAge      int    `koanf:"max_age"`
}

// OrderConfig holds the fixed order batch contents sent with every purchase.
type OrderConfig struct {
	FromName   string          `koanf:"from_name" validate:"required"`
	Message    string          `koanf:"message"`
	SendMethod string          `koanf:"send_method"`
	Recipient  RecipientConfig `koanf:"recipient"`
	ProductID  string          `koanf:"product_id" validate:"required"`
	Quantity   int             `koanf:"quantity" validate:"required,min=1"`
}

type RecipientConfig struct {
	FirstName  string `koanf:"first_name" validate:"required"`
	LastName   string `koanf:"last_name"`
	Address1   string `koanf:"address_1" validate:"required"`
	Address2   string `koanf:"address_2"`
	City       string `koanf:"city" validate:"required"`
	State      string `koanf:"state" validate:"required"`
	PostalCode string `koanf:"postal_code" validate:"required"`
	Country    string `koanf:"country" validate:"required"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":             "development",
		"server.port":             "4000",
		"server.read_timeout":     "10s",
		"server.write_timeout":    "45s",
		"server.idle_timeout":     "60s",
		"server.request_timeout":  "40s",
		"server.shutdown_timeout": "30s",

		"provider.base_url":    "https://api.sandbox.ongoody.com",
		"provider.timeout":     "30s",
		"provider.end_user_id": "123",

		"cors.frontend_url": "http://localhost:4001",
		"cors.max_age":      300,

		"order.from_name":             "Monaco User",
		"order.message":               "Thanks!",
		"order.recipient.first_name":  "Alena",
		"order.recipient.last_name":   "Kenter",
		"order.recipient.address_1":   "185 Berry St",
		"order.recipient.address_2":   "",
		"order.recipient.city":        "San Francisco",
		"order.recipient.state":       "CA",
		"order.recipient.postal_code": "94107",
		"order.recipient.country":     "US",
		"order.product_id":            "bc25af6b-bf71-4da3-a8ef-5f873e03b7d4",
		"order.quantity":              1,

		"logger.level":  "info",
		"logger.format": "text",
	}
}

// envKey turns an environment variable name into a config key, or "" to skip it.
func envKey(name string) string {
	if key, ok := envAliases[name]; ok {
		return key
	}
	if !strings.HasPrefix(name, envPrefix) {
		return ""
	}
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(name, envPrefix)),
		"__",
		".",
	)
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load config defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider("", ".", envKey), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
