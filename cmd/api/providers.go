package main

import (
	"github.com/sefazor/premium-checkout/internal/config"
	"github.com/sefazor/premium-checkout/pkg/payment"
)

func newStripeOptions(cfg *config.Config) payment.StripeOptions {
	return payment.StripeOptions{
		SecretKey: cfg.Stripe.SecretKey,
		APIURL:    cfg.Stripe.APIURL,
		Timeout:   cfg.Stripe.Timeout,
	}
}
