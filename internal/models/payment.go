package models

const DefaultPlan = "premium"

type CreateCheckoutSessionRequest struct {
	Plan string `json:"plan" form:"plan" query:"plan"`
}

type CheckoutSession struct {
	ID  string `json:"-"`
	URL string `json:"url"`
}

// PriceSpec describes the single line item sent to the payment provider.
// UnitAmount is in minor currency units (999 = 9.99).
type PriceSpec struct {
	Currency           string `validate:"required,stripe_currency"`
	UnitAmount         int64  `validate:"gt=0"`
	ProductName        string `validate:"required"`
	ProductDescription string
	Interval           string `validate:"oneof=day week month year"`
}

// PremiumPrice is charged for every plan until plans map to their own prices.
var PremiumPrice = PriceSpec{
	Currency:           "eur",
	UnitAmount:         999,
	ProductName:        "Premium Plan",
	ProductDescription: "Accès aux fonctionnalités premium",
	Interval:           "month",
}
