package validators

import (
	"context"
	"testing"

	"github.com/jb131997/gymdesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// MinorUnits
// ─────────────────────────────────────────────

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		currency string
		want     int64
	}{
		{name: "usd cents", price: 19.99, currency: "usd", want: 1999},
		{name: "usd whole", price: 50, currency: "usd", want: 5000},
		{name: "usd rounds", price: 10.005, currency: "usd", want: 1001},
		{name: "jpy zero-decimal", price: 500, currency: "jpy", want: 500},
		{name: "jpy rounds fraction", price: 500.4, currency: "jpy", want: 500},
		{name: "krw zero-decimal", price: 1200, currency: "KRW", want: 1200},
		{name: "currency case insensitive", price: 19.99, currency: "USD", want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(tt.price, tt.currency))
		})
	}
}

func TestValidateCurrency(t *testing.T) {
	require.NoError(t, ValidateCurrency("usd"))
	require.NoError(t, ValidateCurrency("EUR"))
	require.NoError(t, ValidateCurrency(" jpy "))

	for _, bad := range []string{"", "us", "usdd", "u$d", "123"} {
		require.ErrorIs(t, ValidateCurrency(bad), ErrInvalidCurrency, "currency %q", bad)
	}
}

// ─────────────────────────────────────────────
// ValidateBillingPeriod
// ─────────────────────────────────────────────

func TestValidateBillingPeriod(t *testing.T) {
	tests := []struct {
		name    string
		unit    string
		count   int
		wantErr error
	}{
		{name: "one day", unit: models.IntervalDay, count: 1},
		{name: "one week", unit: models.IntervalWeek, count: 1},
		{name: "one month", unit: models.IntervalMonth, count: 1},
		{name: "twelve months", unit: models.IntervalMonth, count: 12},
		{name: "one year", unit: models.IntervalYear, count: 1},
		{name: "1094 days just under the ceiling", unit: models.IntervalDay, count: 1094},

		{name: "1096 days exceeds bounds", unit: models.IntervalDay, count: 1096, wantErr: ErrBillingPeriodBounds},
		{name: "four years exceeds bounds", unit: models.IntervalYear, count: 4, wantErr: ErrBillingPeriodBounds},
		{name: "zero count", unit: models.IntervalMonth, count: 0, wantErr: ErrInvalidIntervalCount},
		{name: "negative count", unit: models.IntervalMonth, count: -2, wantErr: ErrInvalidIntervalCount},
		{name: "unknown unit", unit: "fortnight", count: 1, wantErr: ErrInvalidIntervalUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBillingPeriod(tt.unit, tt.count)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateProductType(t *testing.T) {
	for _, ok := range []string{
		models.ProductTypeProduct,
		models.ProductTypeService,
		models.ProductTypeMembership,
		models.ProductTypeSubscription,
	} {
		require.NoError(t, ValidateProductType(ok))
	}
	require.ErrorIs(t, ValidateProductType("bundle"), ErrInvalidProductType)
}

// ─────────────────────────────────────────────
// productValidator
// ─────────────────────────────────────────────

func validProductInput() models.ProductInput {
	return models.ProductInput{
		Name:     "Day Pass",
		Price:    15,
		Type:     models.ProductTypeProduct,
		Currency: "usd",
	}
}

func TestProductValidator_Validate(t *testing.T) {
	v := NewProductValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validProductInput()))

	recurring := validProductInput()
	recurring.Type = models.ProductTypeMembership
	recurring.IntervalUnit = models.IntervalMonth
	recurring.IntervalCount = 1
	require.NoError(t, v.Validate(ctx, recurring))

	tests := []struct {
		name    string
		mutate  func(*models.ProductInput)
		wantErr error
	}{
		{
			name:    "missing name",
			mutate:  func(p *models.ProductInput) { p.Name = " " },
			wantErr: ErrNameRequired,
		},
		{
			name:    "zero price",
			mutate:  func(p *models.ProductInput) { p.Price = 0 },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			mutate:  func(p *models.ProductInput) { p.Price = -5 },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "unknown type",
			mutate:  func(p *models.ProductInput) { p.Type = "bundle" },
			wantErr: ErrInvalidProductType,
		},
		{
			name:    "bad currency",
			mutate:  func(p *models.ProductInput) { p.Currency = "dollars" },
			wantErr: ErrInvalidCurrency,
		},
		{
			name: "billing period out of bounds",
			mutate: func(p *models.ProductInput) {
				p.Type = models.ProductTypeSubscription
				p.IntervalUnit = models.IntervalYear
				p.IntervalCount = 4
			},
			wantErr: ErrBillingPeriodBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProductInput()
			tt.mutate(&input)
			require.ErrorIs(t, v.Validate(ctx, input), tt.wantErr)
		})
	}
}

func TestProductValidator_UnsupportedType(t *testing.T) {
	v := NewProductValidator()
	require.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
