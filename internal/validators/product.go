package validators

import (
	"math"
	"strings"
	"time"

	"github.com/jb131997/gymdesk/models"
)

// Billing period bounds, in days. The payment provider rejects recurring
// prices whose full period falls outside this window.
const (
	minBillingPeriodDays = 1
	maxBillingPeriodDays = 1095
)

// zeroDecimalCurrencies are the ISO codes the payment provider treats as
// having no minor unit: amounts are sent as-is instead of in hundredths.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {},
	"krw": {}, "mga": {}, "pyg": {}, "rwf": {}, "ugx": {}, "vnd": {},
	"vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

// ValidateCurrency accepts any three-letter ISO 4217 code, lowercased.
func ValidateCurrency(currency string) error {
	code := strings.ToLower(strings.TrimSpace(currency))
	if len(code) != 3 {
		return ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return ErrInvalidCurrency
		}
	}
	return nil
}

// MinorUnits converts a major-unit price (e.g. 19.99) into the integer
// amount the payment provider expects. Most currencies are multiplied by
// 100 and rounded to the nearest integer; zero-decimal currencies (JPY and
// friends) are rounded but not multiplied.
func MinorUnits(price float64, currency string) int64 {
	code := strings.ToLower(strings.TrimSpace(currency))
	if _, ok := zeroDecimalCurrencies[code]; ok {
		return int64(math.Round(price))
	}
	return int64(math.Round(price * 100))
}

// ValidateBillingPeriod checks that the calendar span of one billing period
// starting now lies between 1 and 1095 days inclusive. The span is computed
// with calendar-aware addition, so "1 month" is 28–31 days depending on the
// current date rather than a fixed 30.
func ValidateBillingPeriod(unit string, count int) error {
	if count < 1 {
		return ErrInvalidIntervalCount
	}

	now := time.Now()
	var end time.Time
	switch unit {
	case models.IntervalDay:
		end = now.AddDate(0, 0, count)
	case models.IntervalWeek:
		end = now.AddDate(0, 0, count*7)
	case models.IntervalMonth:
		end = now.AddDate(0, count, 0)
	case models.IntervalYear:
		end = now.AddDate(count, 0, 0)
	default:
		return ErrInvalidIntervalUnit
	}

	days := end.Sub(now).Hours() / 24
	if days < minBillingPeriodDays || days > maxBillingPeriodDays {
		return ErrBillingPeriodBounds
	}
	return nil
}

// ValidateProductType accepts the catalog's known product types.
func ValidateProductType(productType string) error {
	switch productType {
	case models.ProductTypeProduct, models.ProductTypeService,
		models.ProductTypeMembership, models.ProductTypeSubscription:
		return nil
	default:
		return ErrInvalidProductType
	}
}
