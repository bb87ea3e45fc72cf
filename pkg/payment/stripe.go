package payment

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"go.uber.org/zap"
)

type StripeOptions struct {
	SecretKey string
	// APIURL overrides the Stripe API base URL; empty uses api.stripe.com.
	APIURL  string
	Timeout time.Duration
}

type SubscriptionCheckout struct {
	Currency           string
	UnitAmount         int64
	ProductName        string
	ProductDescription string
	Interval           string
	SuccessURL         string
	CancelURL          string
	Metadata           map[string]string
}

// StripeService owns its own API client so the secret key never lands in
// the package-level stripe.Key.
type StripeService struct {
	api *client.API
}

func NewStripeService(opts StripeOptions, logger *zap.Logger) *StripeService {
	backendConfig := func(url string) *stripe.BackendConfig {
		cfg := &stripe.BackendConfig{
			HTTPClient:        &http.Client{Timeout: opts.Timeout},
			LeveledLogger:     logger.Named("stripe").Sugar(),
			MaxNetworkRetries: stripe.Int64(0),
		}
		if url != "" {
			cfg.URL = stripe.String(url)
		}
		return cfg
	}

	api := &client.API{}
	api.Init(opts.SecretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig(opts.APIURL)),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendConfig("")),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendConfig("")),
	})

	return &StripeService{
		api: api,
	}
}

func (s *StripeService) CreateSubscriptionCheckout(ctx context.Context, req SubscriptionCheckout) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.UnitAmount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.ProductDescription),
					},
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String(req.Interval),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// ErrorMessage returns the text Stripe put in the error body, falling back
// to the error string for transport failures.
func ErrorMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
