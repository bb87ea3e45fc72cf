package controller

import (
	"context"

	"github.com/sefazor/premium-checkout/internal/models"
	"github.com/sefazor/premium-checkout/internal/service"
)

type CheckoutController struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutController(checkoutService *service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

func (c *CheckoutController) CreateCheckoutSession(ctx context.Context, req models.CreateCheckoutSessionRequest) (*models.CheckoutSession, error) {
	return c.checkoutService.CreateCheckoutSession(ctx, req.Plan)
}
