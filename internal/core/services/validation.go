package services

import (
	"fmt"

	"github.com/SscSPs/currency_exchange/internal/apperrors"
	"github.com/SscSPs/currency_exchange/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// validate is shared by all services.
var validate = validator.New()

var currencyCodeTag = fmt.Sprintf("len=%d,alpha", domain.CurrencyCodeLength)

// validateCurrencyCode checks an already normalized code and names field in the error.
func validateCurrencyCode(field, code string) error {
	if err := validate.Var(code, "required"); err != nil {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	if err := validate.Var(code, currencyCodeTag); err != nil {
		return fmt.Errorf("%w: %s must be %d letters, got %q", apperrors.ErrValidation, field, domain.CurrencyCodeLength, code)
	}
	return nil
}

func validateRequired(field, value string) error {
	if err := validate.Var(value, "required"); err != nil {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	return nil
}
