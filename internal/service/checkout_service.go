package service

import (
	"context"
	"errors"
	"time"

	"github.com/sefazor/premium-checkout/internal/config"
	"github.com/sefazor/premium-checkout/internal/models"
	"github.com/sefazor/premium-checkout/internal/observability"
	"github.com/sefazor/premium-checkout/pkg/payment"
	"github.com/sefazor/premium-checkout/pkg/utils"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

var ErrCheckoutSessionFailed = errors.New("checkout session creation failed")

var errMissingSessionURL = errors.New("checkout session has no url")

// CheckoutError carries the provider failure behind a checkout attempt.
// Error returns the provider's message unchanged.
type CheckoutError struct {
	Plan string
	Err  error
}

func (e *CheckoutError) Error() string {
	return payment.ErrorMessage(e.Err)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

func (e *CheckoutError) Is(target error) bool {
	return target == ErrCheckoutSessionFailed
}

type CheckoutProvider interface {
	CreateSubscriptionCheckout(ctx context.Context, req payment.SubscriptionCheckout) (*stripe.CheckoutSession, error)
}

type CheckoutService struct {
	provider  CheckoutProvider
	redirects config.CheckoutConfig
	validator *utils.Validator
	metrics   *observability.Metrics
	logger    *zap.Logger
}

func NewCheckoutService(provider CheckoutProvider, cfg *config.Config, validator *utils.Validator, metrics *observability.Metrics, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		provider:  provider,
		redirects: cfg.Checkout,
		validator: validator,
		metrics:   metrics,
		logger:    logger.Named("checkout"),
	}
}

func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, plan string) (*models.CheckoutSession, error) {
	if plan == "" {
		plan = models.DefaultPlan
	}

	// Every plan is billed at the premium price for now.
	price := models.PremiumPrice
	if err := s.validator.Struct(price); err != nil {
		return nil, &CheckoutError{Plan: plan, Err: err}
	}

	start := time.Now()
	session, err := s.provider.CreateSubscriptionCheckout(ctx, payment.SubscriptionCheckout{
		Currency:           price.Currency,
		UnitAmount:         price.UnitAmount,
		ProductName:        price.ProductName,
		ProductDescription: price.ProductDescription,
		Interval:           price.Interval,
		SuccessURL:         s.redirects.SuccessURL,
		CancelURL:          s.redirects.CancelURL,
		Metadata:           map[string]string{"plan": plan},
	})
	if err == nil && (session == nil || session.URL == "") {
		err = errMissingSessionURL
	}
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.RecordCheckoutSession(observability.StatusError, elapsed.Seconds())
		s.logger.Error("checkout session creation failed",
			zap.String("plan", plan),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, &CheckoutError{Plan: plan, Err: err}
	}

	s.metrics.RecordCheckoutSession(observability.StatusSuccess, elapsed.Seconds())
	s.logger.Info("checkout session created",
		zap.String("plan", plan),
		zap.String("session_id", session.ID),
		zap.Duration("elapsed", elapsed),
	)

	return &models.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}
