// pkg/valueobjects/money_test.go
package valueobjects

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		currency    Currency
		shouldError bool
	}{
		{
			name:        "valid money",
			amount:      decimal.NewFromFloat(10.99),
			currency:    USD,
			shouldError: false,
		},
		{
			name:        "zero amount",
			amount:      decimal.Zero,
			currency:    EUR,
			shouldError: false,
		},
		{
			name:        "negative amount",
			amount:      decimal.NewFromFloat(-10.99),
			currency:    USD,
			shouldError: true,
		},
		{
			name:        "invalid currency",
			amount:      decimal.NewFromFloat(10.99),
			currency:    "XXX",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			money, err := NewMoney(tt.amount, tt.currency)
			if tt.shouldError {
				assert.Error(t, err)
				assert.Nil(t, money)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, money)
				assert.True(t, tt.amount.Equal(money.amount))
				assert.Equal(t, tt.currency, money.currency)
			}
		})
	}
}

func TestNewMoneyFromFloat(t *testing.T) {
	money, err := NewMoneyFromFloat(1700, TripCurrency)
	require.NoError(t, err)
	assert.Equal(t, 1700.0, money.Float64())

	_, err = NewMoneyFromFloat(math.NaN(), TripCurrency)
	assert.Error(t, err)

	_, err = NewMoneyFromFloat(math.Inf(1), TripCurrency)
	assert.Error(t, err)

	_, err = NewMoneyFromFloat(-1, TripCurrency)
	assert.Error(t, err)
}

func TestMoneyPercent(t *testing.T) {
	tests := []struct {
		total    float64
		pct      int64
		expected float64
	}{
		{1000, 40, 400},
		{1000, 25, 250},
		{999, 40, 400},
		{999, 25, 250},
		{999, 20, 200},
		{10, 25, 3},
		{1, 40, 0},
		{0, 85, 0},
		{1234.5, 85, 1049},
	}

	for _, tt := range tests {
		money, err := NewMoneyFromFloat(tt.total, TripCurrency)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, money.Percent(tt.pct).Float64(), "%v%% of %v", tt.pct, tt.total)
	}
}

func TestMoneyAddAndRemainder(t *testing.T) {
	ten, _ := NewMoneyFromFloat(10, USD)
	four, _ := NewMoneyFromFloat(4, USD)
	euros, _ := NewMoneyFromFloat(4, EUR)

	sum, err := ten.Add(*four)
	require.NoError(t, err)
	assert.Equal(t, 14.0, sum.Float64())

	rest, err := ten.Remainder(*four)
	require.NoError(t, err)
	assert.Equal(t, 6.0, rest.Float64())

	clamped, err := four.Remainder(*ten)
	require.NoError(t, err)
	assert.Equal(t, 0.0, clamped.Float64())

	_, err = ten.Add(*euros)
	assert.Error(t, err)
	_, err = ten.Remainder(*euros)
	assert.Error(t, err)
}
