package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Provider ProviderConfig `koanf:"provider"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// ProviderConfig carries the Amazon Pay merchant account settings. Region and
// test mode together select the MWS endpoint; TestMode additionally enables
// sandbox simulation directives.
type ProviderConfig struct {
	MerchantID      string        `koanf:"merchant_id" validate:"required"`
	AccessKeyID     string        `koanf:"access_key_id" validate:"required"`
	SecretAccessKey string        `koanf:"secret_access_key" validate:"required"`
	ClientID        string        `koanf:"client_id"`
	Region          string        `koanf:"region" validate:"required,oneof=us uk de jp"`
	Currency        string        `koanf:"currency" validate:"required"`
	TestMode        bool          `koanf:"test_mode"`
	ConnTimeout     time.Duration `koanf:"conn_timeout" validate:"required"`

	// APIURLOverride points the client at a non-standard endpoint, e.g. a
	// local stub. Empty means the regional endpoint.
	APIURLOverride string `koanf:"api_url_override"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

// APIURL returns the MWS off-Amazon payments endpoint for the configured
// region, switching to the sandbox variant in test mode.
func (c *ProviderConfig) APIURL() string {
	if c.APIURLOverride != "" {
		return c.APIURLOverride
	}
	sandbox := ""
	if c.TestMode {
		sandbox = "_Sandbox"
	}
	return map[string]string{
		"us": "https://mws.amazonservices.com/OffAmazonPayments" + sandbox + "/2013-01-01",
		"uk": "https://mws-eu.amazonservices.com/OffAmazonPayments" + sandbox + "/2013-01-01",
		"de": "https://mws-eu.amazonservices.com/OffAmazonPayments" + sandbox + "/2013-01-01",
		"jp": "https://mws.amazonservices.jp/OffAmazonPayments" + sandbox + "/2013-01-01",
	}[c.Region]
}

// WidgetsURL returns the hosted-checkout widgets script for the configured
// region, switching to the sandbox variant in test mode.
func (c *ProviderConfig) WidgetsURL() string {
	sandbox := ""
	if c.TestMode {
		sandbox = "/sandbox"
	}
	return map[string]string{
		"us": "https://static-na.payments-amazon.com/OffAmazonPayments/us" + sandbox + "/js/Widgets.js",
		"uk": "https://static-eu.payments-amazon.com/OffAmazonPayments/uk" + sandbox + "/lpa/js/Widgets.js",
		"de": "https://static-eu.payments-amazon.com/OffAmazonPayments/de" + sandbox + "/lpa/js/Widgets.js",
		"jp": "https://origin-na.ssl-images-amazon.com/images/G/09/EP/offAmazonPayments" + sandbox + "/prod/lpa/js/Widgets.js",
	}[c.Region]
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("AMAZONPAY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "AMAZONPAY_")),
			"__",
			".",
		)
	}), nil)
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
