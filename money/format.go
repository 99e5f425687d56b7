package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/n-r-w/exactnum"
)

const (
	// invalidMoneyString is the string representation for invalid Money.
	invalidMoneyString = "invalid"
)

// String returns string representation of Money.
// Format: "currency/amount" where amount uses Number.String() format.
// Returns "invalid" for invalid Money.
// Uses value receiver as this is an immutable operation.
func (m Money) String() string {
	if m.IsInvalid() {
		return invalidMoneyString
	}

	amountStr := m.amount.String()

	return fmt.Sprintf("%s/%s", m.currency, amountStr)
}

// ParseMoney parses a string representation of Money.
// Expected format: "currency/amount" where amount is anything exactnum.Parse
// accepts: a decimal literal (e.g. "1.23", "-5", "0") or a fraction
// "numerator/denominator" (e.g. "1/3"). Returns error for invalid format,
// empty currency, or an amount that fails to parse.
func ParseMoney(s string) (Money, error) {
	if s == "" {
		return Money{}, errors.New("empty string")
	}

	if s == invalidMoneyString {
		return Money{}, errors.New("invalid money string")
	}

	currency, amountStr, found := strings.Cut(s, "/")
	if !found {
		return Money{}, errors.New("invalid format: missing currency or amount")
	}

	if currency == "" {
		return Money{}, errors.New("invalid format: empty currency")
	}

	amount, err := exactnum.Parse(amountStr)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %w", err)
	}

	money, err := NewMoneyErr(currency, amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money: %w", err)
	}

	return money, nil
}
