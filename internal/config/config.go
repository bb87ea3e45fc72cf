package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sefazor/premium-checkout/pkg/utils"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// Placeholder key shipped in sample env files.
	PlaceholderStripeKey = "sk_test_your_secret_key"
)

var ErrInsecureStripeKey = errors.New("test or placeholder stripe key is not allowed in production")

type StripeConfig struct {
	SecretKey string        `validate:"required"`
	APIURL    string        `validate:"omitempty,url"`
	Timeout   time.Duration `validate:"gt=0"`
}

type CheckoutConfig struct {
	SuccessURL string `validate:"required,url"`
	CancelURL  string `validate:"required,url"`
}

type Config struct {
	Env              string `validate:"oneof=development production"`
	Port             string `validate:"required,numeric"`
	LogLevel         string
	CORSAllowOrigins string `validate:"required"`
	RateLimitMax     int    `validate:"gte=0"`
	MetricsEnabled   bool
	Stripe           StripeConfig
	Checkout         CheckoutConfig
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	var err error
	cfg.Env = getEnv("APP_ENV", EnvDevelopment)
	cfg.Port = getEnv("PORT", "8000")
	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.CORSAllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	if cfg.RateLimitMax, err = strconv.Atoi(getEnv("RATE_LIMIT_MAX", "0")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_MAX: %w", err)
	}
	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		return nil, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	// Stripe config
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.APIURL = os.Getenv("STRIPE_API_URL")
	if cfg.Stripe.Timeout, err = time.ParseDuration(getEnv("STRIPE_TIMEOUT", "30s")); err != nil {
		return nil, fmt.Errorf("invalid STRIPE_TIMEOUT: %w", err)
	}

	// Checkout redirect URLs
	cfg.Checkout.SuccessURL = getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/success")
	cfg.Checkout.CancelURL = getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/cancel")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := utils.NewValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.IsProduction() && isTestKey(c.Stripe.SecretKey) {
		return ErrInsecureStripeKey
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func isTestKey(key string) bool {
	return key == PlaceholderStripeKey || strings.HasPrefix(key, "sk_test_")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
