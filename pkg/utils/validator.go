package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	if err := v.RegisterValidation("stripe_currency", stripeCurrency(v)); err != nil {
		panic(err)
	}

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Stripe expects ISO 4217 codes in lowercase ("eur", "usd").
func stripeCurrency(v *validator.Validate) validator.Func {
	return func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if code == "" || code != strings.ToLower(code) {
			return false
		}
		return v.Var(strings.ToUpper(code), "iso4217") == nil
	}
}
