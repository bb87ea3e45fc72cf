package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "PORT", "LOG_LEVEL", "CORS_ALLOW_ORIGINS", "RATE_LIMIT_MAX", "METRICS_ENABLED",
		"STRIPE_SECRET_KEY", "STRIPE_API_URL", "STRIPE_TIMEOUT",
		"CHECKOUT_SUCCESS_URL", "CHECKOUT_CANCEL_URL",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"STRIPE_SECRET_KEY": "sk_test_123"})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.Equal(t, 0, cfg.RateLimitMax)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 30*time.Second, cfg.Stripe.Timeout)
	assert.Equal(t, "http://localhost:5173/success", cfg.Checkout.SuccessURL)
	assert.Equal(t, "http://localhost:5173/cancel", cfg.Checkout.CancelURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"APP_ENV":              EnvProduction,
		"PORT":                 "9090",
		"RATE_LIMIT_MAX":       "20",
		"METRICS_ENABLED":      "false",
		"STRIPE_SECRET_KEY":    "sk_live_abc",
		"STRIPE_API_URL":       "http://stripe-mock:12111",
		"STRIPE_TIMEOUT":       "5s",
		"CHECKOUT_SUCCESS_URL": "https://app.example.com/success",
		"CHECKOUT_CANCEL_URL":  "https://app.example.com/cancel",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "http://stripe-mock:12111", cfg.Stripe.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Stripe.Timeout)
	assert.Equal(t, "https://app.example.com/success", cfg.Checkout.SuccessURL)
}

func TestLoadConfig_MissingSecretKey(t *testing.T) {
	setEnv(t, map[string]string{})

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsTestKeyInProduction(t *testing.T) {
	for _, key := range []string{PlaceholderStripeKey, "sk_test_51abc"} {
		t.Run(key, func(t *testing.T) {
			setEnv(t, map[string]string{
				"APP_ENV":           EnvProduction,
				"STRIPE_SECRET_KEY": key,
			})

			_, err := LoadConfig()
			assert.ErrorIs(t, err, ErrInsecureStripeKey)
		})
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", "STRIPE_TIMEOUT", "soon"},
		{"negative timeout", "STRIPE_TIMEOUT", "-1s"},
		{"bad rate limit", "RATE_LIMIT_MAX", "many"},
		{"bad metrics flag", "METRICS_ENABLED", "maybe"},
		{"bad success url", "CHECKOUT_SUCCESS_URL", "not a url"},
		{"unknown env", "APP_ENV", "staging"},
		{"non numeric port", "PORT", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, map[string]string{
				"STRIPE_SECRET_KEY": "sk_test_123",
				tt.key:              tt.val,
			})

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
