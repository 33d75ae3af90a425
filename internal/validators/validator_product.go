package validators

import (
	"context"
	"strings"

	"github.com/jb131997/gymdesk/models"
)

// productValidator applies the catalog rules: positive price, known type and
// currency, plus billing period bounds for recurring products.
type productValidator struct{}

// NewProductValidator constructs a [Validator] for [models.ProductInput] values.
func NewProductValidator() Validator {
	return &productValidator{}
}

func (v *productValidator) Validate(_ context.Context, value any, _ ...string) error {
	input, ok := value.(models.ProductInput)
	if !ok {
		if ptr, okPtr := value.(*models.ProductInput); okPtr {
			input = *ptr
		} else {
			return ErrUnsupportedType
		}
	}

	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if input.Price <= 0 {
		return ErrInvalidPrice
	}
	if err := ValidateProductType(input.Type); err != nil {
		return err
	}
	if err := ValidateCurrency(input.Currency); err != nil {
		return err
	}
	if input.IntervalUnit != "" {
		if err := ValidateBillingPeriod(input.IntervalUnit, input.IntervalCount); err != nil {
			return err
		}
	}

	return nil
}
