package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrNameRequired      = errors.New("name is required")
	ErrContactRequired   = errors.New("either email or phone number is required")
	ErrIncompleteAddress = errors.New("please fill in all address fields or leave them all empty")
	ErrInvalidZIP        = errors.New("please enter a valid ZIP code")
	ErrInvalidStatus     = errors.New("status must be active or inactive")

	ErrInvalidPrice         = errors.New("price must be greater than zero")
	ErrInvalidProductType   = errors.New("invalid product type")
	ErrInvalidCurrency      = errors.New("invalid currency code")
	ErrInvalidIntervalUnit  = errors.New("interval unit must be day, week, month or year")
	ErrInvalidIntervalCount = errors.New("interval count must be at least 1")
	ErrBillingPeriodBounds  = errors.New("billing period must span between 1 and 1095 days")
)
