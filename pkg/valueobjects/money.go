// pkg/valueobjects/money.go
package valueobjects

import (
	"fmt"
	"math"

	"github.com/NomadCrew/travel-timeline-backend/errors"
	"github.com/shopspring/decimal"
)

// Currency represents a valid ISO 4217 currency code
type Currency string

// Supported currencies
const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// TripCurrency is the currency every trip cost is recorded in.
const TripCurrency = USD

// validCurrencies maintains a set of supported currencies
var validCurrencies = map[Currency]bool{
	USD: true,
	EUR: true,
	GBP: true,
}

// Money represents a non-negative monetary value with a specific currency
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money instance with validation
func NewMoney(amount decimal.Decimal, currency Currency) (*Money, error) {
	if !isValidCurrency(currency) {
		return nil, errors.ValidationFailed(
			"invalid currency",
			fmt.Sprintf("currency %s is not supported", currency),
		)
	}

	if amount.LessThan(decimal.Zero) {
		return nil, errors.ValidationFailed(
			"invalid amount",
			"amount cannot be negative",
		)
	}

	return &Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyFromFloat creates a Money instance from a JSON number
func NewMoneyFromFloat(amount float64, currency Currency) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.ValidationFailed(
			"invalid amount",
			"amount must be a finite number",
		)
	}
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Float64 returns the amount as a float for JSON payloads
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Percent returns pct percent of m rounded to whole currency units.
// Halves round away from zero.
func (m Money) Percent(pct int64) Money {
	share := m.amount.Mul(decimal.NewFromInt(pct)).Div(decimal.NewFromInt(100))
	return Money{amount: share.Round(0), currency: m.currency}
}

// Add adds two monetary values of the same currency
func (m Money) Add(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.ValidationFailed(
			ErrCurrencyMismatch,
			fmt.Sprintf("cannot add %s to %s", other.currency, m.currency),
		)
	}

	return &Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
	}, nil
}

// Remainder subtracts other from m, clamping the result at zero
func (m Money) Remainder(other Money) (*Money, error) {
	if m.currency != other.currency {
		return nil, errors.ValidationFailed(
			ErrCurrencyMismatch,
			fmt.Sprintf("cannot subtract %s from %s", other.currency, m.currency),
		)
	}

	result := m.amount.Sub(other.amount)
	if result.LessThan(decimal.Zero) {
		result = decimal.Zero
	}

	return &Money{
		amount:   result,
		currency: m.currency,
	}, nil
}

// private helpers
func isValidCurrency(currency Currency) bool {
	return validCurrencies[currency]
}

const (
	ErrCurrencyMismatch = "CURRENCY_MISMATCH"
)
