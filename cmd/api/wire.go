//go:build wireinject
// +build wireinject

package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sefazor/premium-checkout/internal/config"
	"github.com/sefazor/premium-checkout/internal/controller"
	"github.com/sefazor/premium-checkout/internal/handler"
	"github.com/sefazor/premium-checkout/internal/observability"
	"github.com/sefazor/premium-checkout/internal/router"
	"github.com/sefazor/premium-checkout/internal/service"
	"github.com/sefazor/premium-checkout/pkg/payment"
	"github.com/sefazor/premium-checkout/pkg/utils"
	"go.uber.org/zap"
)

func InitializeAPI(cfg *config.Config, logger *zap.Logger) (*fiber.App, error) {
	wire.Build(
		// Payment provider
		newStripeOptions,
		payment.NewStripeService,
		wire.Bind(new(service.CheckoutProvider), new(*payment.StripeService)),

		// Metrics
		prometheus.NewRegistry,
		observability.NewMetrics,

		// Validator
		utils.NewValidator,

		// Services
		service.NewCheckoutService,

		// Controllers
		controller.NewCheckoutController,

		// Handlers
		handler.NewCheckoutHandler,
		handler.NewHealthHandler,

		// App
		router.NewFiberApp,
	)
	return nil, nil
}
