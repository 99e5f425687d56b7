// Package money provides a Money type built on exactnum.Number that supports exact arithmetic,
// rounding, currency safety, and both mutable/immutable APIs with multi-arg operations.
package money

import (
	"errors"

	"github.com/n-r-w/exactnum"
)

// Currency is an alias for string to provide clarity in documentation and function signatures.
type Currency = string

// Money represents a monetary value with a currency and exact amount.
// The amount is an exactnum.Number, so it carries the same promotion ladder,
// approximation flag, and IEEE specials as any other exactnum value.
// Money is invalid if currency is empty or amount is NaN or infinite —
// none of those states have a meaningful monetary interpretation.
type Money struct {
	currency Currency        // Currency code (case-sensitive, must be non-empty for valid Money)
	amount   exactnum.Number // Exact amount
}

// Error definitions for Money operations.
var (
	// ErrMoneyInvalid indicates that a Money value is in an invalid state.
	ErrMoneyInvalid = errors.New("invalid money")

	// ErrMoneyCurrencyMismatch indicates that an operation was attempted between Money values with different currencies.
	ErrMoneyCurrencyMismatch = errors.New("money currency mismatch")
)

// NewInvalid creates a new invalid Money value.
func NewInvalid() Money {
	return Money{amount: exactnum.NaN()}
}

// NewMoney creates a new Money with the given currency and amount.
// Returns a value, not a pointer, following project preferences.
// The Money is invalid if currency is empty or amount is not finite (NaN or infinite).
func NewMoney(currency Currency, amount exactnum.Number) Money {
	m, _ := NewMoneyErr(currency, amount)
	return m
}

// NewMoneyErr creates a new Money with the given currency and amount.
// Returns a value, not a pointer, following project preferences.
// The Money is invalid if currency is empty or amount is not finite.
func NewMoneyErr(currency Currency, amount exactnum.Number) (Money, error) {
	// If currency is empty, return invalid Money
	if currency == "" {
		return NewInvalid(), ErrMoneyInvalid
	}

	// A monetary amount that is NaN or infinite has no meaningful value
	if amountDegenerate(amount) {
		return NewInvalid(), ErrMoneyInvalid
	}

	return Money{
		currency: currency,
		amount:   amount,
	}, nil
}

// NewMoneyInt creates a Money from an integer value.
// Equivalent to NewMoney(currency, exactnum.From(value)).
func NewMoneyInt(currency Currency, value int64) Money {
	m, _ := NewMoneyIntErr(currency, value)
	return m
}

// NewMoneyIntErr creates a Money from an integer value.
// Equivalent to NewMoney(currency, exactnum.From(value)).
func NewMoneyIntErr(currency Currency, value int64) (Money, error) {
	if currency == "" {
		return NewInvalid(), ErrMoneyInvalid
	}

	return NewMoneyErr(currency, exactnum.From(value))
}

// NewMoneyFloat creates a Money from a float64 value.
// Returns invalid Money if currency is empty or float conversion fails.
// Equivalent to NewMoney(currency, exactnum.FromFloat64(value)).
func NewMoneyFloat(currency Currency, value float64) Money {
	m, _ := NewMoneyFloatErr(currency, value)
	return m
}

// NewMoneyFloatErr creates a Money from a float64 value.
// Returns invalid Money if currency is empty or float conversion fails.
// Equivalent to NewMoney(currency, exactnum.FromFloat64(value)).
func NewMoneyFloatErr(currency Currency, value float64) (Money, error) {
	amount := exactnum.FromFloat64(value)
	if amount.IsNaN() {
		return NewInvalid(), ErrMoneyInvalid
	}

	return NewMoneyErr(currency, amount)
}

// NewMoneyFromFraction creates a Money from a fraction (numerator/denominator).
// Returns invalid Money if currency is empty or denominator is zero.
func NewMoneyFromFraction(numerator int64, denominator uint64, currency Currency) Money {
	m, _ := NewMoneyFromFractionErr(numerator, denominator, currency)
	return m
}

// NewMoneyFromFractionErr creates a Money from a fraction (numerator/denominator).
// Returns invalid Money if currency is empty or denominator is zero.
func NewMoneyFromFractionErr(numerator int64, denominator uint64, currency Currency) (Money, error) {
	if currency == "" {
		return NewInvalid(), ErrMoneyInvalid
	}

	amount := exactnum.FromFraction(numerator, denominator)
	if amount.IsNaN() {
		return NewInvalid(), ErrMoneyInvalid
	}

	return NewMoneyErr(currency, amount)
}

// ZeroMoney creates a Money representing zero in the given currency.
// Returns invalid Money if currency is empty.
func ZeroMoney(currency Currency) Money {
	m, _ := ZeroMoneyErr(currency)
	return m
}

// ZeroMoneyErr creates a Money representing zero in the given currency.
// Returns invalid Money if currency is empty.
func ZeroMoneyErr(currency Currency) (Money, error) {
	return NewMoneyErr(currency, exactnum.ZERO)
}

// amountDegenerate reports whether n has no meaningful monetary value:
// NaN (the invalid sentinel) or an infinity (overflow has nowhere
// further to promote to and so is treated the same way).
func amountDegenerate(n exactnum.Number) bool {
	return n.IsNaN() || n.IsInfinite()
}

// IsValid checks if the Money is in a valid state.
// Returns true if currency is non-empty and amount is finite.
func (m Money) IsValid() bool {
	return m.currency != "" && !amountDegenerate(m.amount)
}

// IsInvalid checks if the Money is in an invalid state.
// Returns true if currency is empty or amount is not finite (NaN or infinite).
func (m Money) IsInvalid() bool {
	return !m.IsValid()
}

// Invalidate marks the Money as invalid by clearing currency and setting
// the amount to NaN. Uses pointer receiver as this is a mutable operation.
func (m *Money) Invalidate() {
	m.currency = ""
	m.amount = exactnum.NaN()
}

// Currency returns the currency code of the Money.
// Returns empty string for invalid Money.
func (m Money) Currency() string {
	return m.currency
}

// Amount returns the underlying exactnum.Number amount.
// Returns NaN for invalid Money.
func (m Money) Amount() exactnum.Number {
	return m.amount
}

// SameCurrency checks if this Money has the same currency as another Money.
// Returns true only if both Money values are valid and have matching currencies.
// Uses value receiver as this is an immutable operation.
func (m Money) SameCurrency(other Money) bool {
	return hasSameCurrency(m, other)
}

// SameCurrency is a convenience function that checks if two Money values have the same currency.
// Returns true only if both Money values are valid and have matching currencies.
func SameCurrency(a, b Money) bool {
	return hasSameCurrency(a, b)
}

// SameCurrencies is a convenience function that checks if all Money values have the same currency.
// Returns true for no Money values, the validity of the value for a single Money value,
// and otherwise whether all Money values have the same currency.
func SameCurrencies(moneys ...Money) bool {
	if len(moneys) == 0 {
		return true
	}

	if len(moneys) == 1 {
		return moneys[0].IsValid()
	}

	for i := 1; i < len(moneys); i++ {
		if !hasSameCurrency(moneys[0], moneys[i]) {
			return false
		}
	}
	return true
}

// IsNegative checks if the Money represents a negative value.
// Returns true if Money is valid and amount is less than zero.
// Uses value receiver as this is an immutable operation.
func (m Money) IsNegative() bool {
	return m.IsValid() && m.amount.Less(exactnum.ZERO)
}

// IsPositive checks if the Money represents a positive value.
// Returns true if Money is valid and amount is greater than zero.
// Uses value receiver as this is an immutable operation.
func (m Money) IsPositive() bool {
	return m.IsValid() && m.amount.Greater(exactnum.ZERO)
}

// IsEmpty checks if the Money is in an empty (invalid) state.
// This is an alias for IsInvalid() for semantic clarity.
// Uses value receiver as this is an immutable operation.
func (m Money) IsEmpty() bool {
	return m.IsInvalid()
}
