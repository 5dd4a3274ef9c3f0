package utils

import (
	"biztrack/config"
	"biztrack/models"
	"fmt"

	"github.com/shopspring/decimal"
)

// CurrencyConverter derives secondary-currency amounts from primary
// amounts at a fixed configured rate (primary units per secondary unit).
type CurrencyConverter struct {
	rate decimal.Decimal
}

// NewCurrencyConverter builds a converter for the given rate.
// The rate must be positive.
func NewCurrencyConverter(rate decimal.Decimal) (*CurrencyConverter, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive, got %s", models.ErrInvalidAmount, rate)
	}
	return &CurrencyConverter{rate: rate}, nil
}

// Rate returns the configured exchange rate
func (c *CurrencyConverter) Rate() decimal.Decimal {
	return c.rate
}

// ToSecondary converts a primary-currency amount at full precision.
// Negative amounts are rejected.
func (c *CurrencyConverter) ToSecondary(amountPrimary decimal.Decimal) (decimal.Decimal, error) {
	if amountPrimary.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative, got %s", models.ErrInvalidAmount, amountPrimary)
	}
	return amountPrimary.Div(c.rate), nil
}

// DisplaySecondary converts and rounds to 2 decimal places (half-up)
// for presentation. Storage keeps the full-precision value.
func (c *CurrencyConverter) DisplaySecondary(amountPrimary decimal.Decimal) (decimal.Decimal, error) {
	secondary, err := c.ToSecondary(amountPrimary)
	if err != nil {
		return decimal.Zero, err
	}
	return secondary.Round(2), nil
}

// ActiveConverter returns a converter for the configured exchange rate.
// LoadConfig already rejects non-positive rates.
func ActiveConverter() *CurrencyConverter {
	converter, err := NewCurrencyConverter(config.AppConfig.ExchangeRate)
	if err != nil {
		panic(err)
	}
	return converter
}
