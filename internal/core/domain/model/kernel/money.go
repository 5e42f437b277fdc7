package kernel

import (
	"math"

	"boutique/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for an amount.
const MoneyScale = 4

// Money is a non-negative, finite amount held as an exact decimal. The zero
// value is 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rejects negative, NaN and infinite amounts. paramName names the
// billing field in the returned error.
func NewMoney(paramName string, amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError(paramName, amount, 0, "+Inf")
	}
	return Money{amount: decimal.NewFromFloat(amount).Round(MoneyScale)}, nil
}

// NewMoneyFromDecimal is NewMoney for amounts read back from storage.
func NewMoneyFromDecimal(paramName string, amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError(paramName, amount.String(), 0, "+Inf")
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MustMoney is NewMoney for constants known to be valid; it panics otherwise.
func MustMoney(amount float64) Money {
	m, err := NewMoney("amount", amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount converts to float64 for the JSON surface.
func (m Money) Amount() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// SubFloor subtracts other and floors the result at zero.
func (m Money) SubFloor(other Money) Money {
	return Money{amount: decimal.Max(decimal.Zero, m.amount.Sub(other.amount))}
}
