package router

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sefazor/premium-checkout/internal/config"
	"github.com/sefazor/premium-checkout/internal/handler"
	"github.com/sefazor/premium-checkout/internal/middleware"
	"github.com/sefazor/premium-checkout/internal/models"
	"github.com/sefazor/premium-checkout/internal/observability"
	"go.uber.org/zap"
)

func NewFiberApp(
	cfg *config.Config,
	checkoutHandler *handler.CheckoutHandler,
	healthHandler *handler.HealthHandler,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "premium-checkout",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	// Global Middleware'ler önce tanımlanmalı
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger(logger))
	if cfg.MetricsEnabled {
		app.Use(middleware.Metrics(metrics))
	}
	app.Use(recover.New())
	allowOrigins, wildcard := corsOrigins(cfg.CORSAllowOrigins)
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET, POST, HEAD, PUT, DELETE, PATCH, OPTIONS",
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: !wildcard,
	}))
	if cfg.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(models.NewErrorResponse("Too many requests"))
			},
		}))
	}

	app.Get("/healthz", healthHandler.Health)
	if cfg.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	}

	api := app.Group("/api")
	api.Post("/create-checkout-session", checkoutHandler.CreateCheckoutSession)

	return app
}

// ErrorHandler renders every unhandled error as {"detail": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(models.NewErrorResponse(err.Error()))
}

// corsOrigins collapses any list containing "*" to a bare wildcard.
func corsOrigins(origins string) (string, bool) {
	for _, origin := range strings.Split(origins, ",") {
		if strings.TrimSpace(origin) == "*" {
			return "*", true
		}
	}
	return origins, false
}
