package money

import "github.com/n-r-w/exactnum"

// Round rounds the Money to the specified number of decimal places (mutable operation).
// Uses the spec default half-away-from-zero convention. Scale interpretation:
// - scale = 0: round to integer (1.23 -> 1)
// - scale > 0: round to decimal places (1.234 with scale=2 -> 1.23)
// - scale < 0: round to powers of 10 (1234 with scale=-2 -> 1200)
// Uses pointer receiver for mutable operation.
func (m *Money) Round(scale int) error {
	if m.IsInvalid() {
		return ErrMoneyInvalid
	}

	m.amount = m.amount.RoundToDecimalPlaces(scale)

	if amountDegenerate(m.amount) {
		m.Invalidate()
		return ErrMoneyInvalid
	}

	return nil
}

// RoundedErr returns a new Money rounded to the specified scale (immutable operation with error).
// Uses value receiver for immutable operation.
func (m Money) RoundedErr(scale int) (Money, error) {
	result := m // copy
	err := result.Round(scale)
	return result, err
}

// Rounded returns a new Money rounded to the specified scale (immutable operation without error).
// Returns invalid Money on error. Uses value receiver for immutable operation.
func (m Money) Rounded(scale int) Money {
	result, _ := m.RoundedErr(scale)
	return result
}

// RoundWithConfig rounds the Money to the specified scale using cfg's rounding mode
// (mutable operation). Uses pointer receiver for mutable operation.
func (m *Money) RoundWithConfig(cfg exactnum.Config, scale int) error {
	if m.IsInvalid() {
		return ErrMoneyInvalid
	}

	m.amount = m.amount.RoundToDecimalPlacesWithConfig(scale, cfg)

	if amountDegenerate(m.amount) {
		m.Invalidate()
		return ErrMoneyInvalid
	}

	return nil
}

// RoundedWithConfigErr returns a new Money rounded to the specified scale using cfg's
// rounding mode (immutable operation with error). Uses value receiver for immutable operation.
func (m Money) RoundedWithConfigErr(cfg exactnum.Config, scale int) (Money, error) {
	result := m // copy
	err := result.RoundWithConfig(cfg, scale)
	return result, err
}

// RoundedWithConfig returns a new Money rounded to the specified scale using cfg's
// rounding mode (immutable operation without error). Returns invalid Money on error.
// Uses value receiver for immutable operation.
func (m Money) RoundedWithConfig(cfg exactnum.Config, scale int) Money {
	result, _ := m.RoundedWithConfigErr(cfg, scale)
	return result
}

// scalePow returns 10^scale as an exact Number, used to shift an amount to
// integer granularity at the requested decimal place before applying Ceil/Floor.
func scalePow(scale int) exactnum.Number {
	ten := exactnum.From(10)
	if scale >= 0 {
		return ten.Pow(exactnum.From(int64(scale)))
	}
	return exactnum.From(1).Div(ten.Pow(exactnum.From(int64(-scale))))
}

// Ceil rounds the Money toward positive infinity to the specified scale (mutable operation).
// Mathematical ceiling function: always rounds up for positive numbers, truncates for negative numbers.
// Uses pointer receiver for mutable operation.
func (m *Money) Ceil(scale int) error {
	if m.IsInvalid() {
		return ErrMoneyInvalid
	}

	pow := scalePow(scale)
	shifted := m.amount.Mul(pow).Ceil()
	m.amount = shifted.Div(pow)

	if amountDegenerate(m.amount) {
		m.Invalidate()
		return ErrMoneyInvalid
	}

	return nil
}

// CeiledErr returns a new Money rounded toward positive infinity to the specified scale
// (immutable operation with error). Uses value receiver for immutable operation.
func (m Money) CeiledErr(scale int) (Money, error) {
	result := m // copy
	err := result.Ceil(scale)
	return result, err
}

// Ceiled returns a new Money rounded toward positive infinity to the specified scale
// (immutable operation without error). Returns invalid Money on error.
// Uses value receiver for immutable operation.
func (m Money) Ceiled(scale int) Money {
	result, _ := m.CeiledErr(scale)
	return result
}

// Floor rounds the Money toward negative infinity to the specified scale (mutable operation).
// Mathematical floor function: truncates for positive numbers, always rounds down for negative numbers.
// Uses pointer receiver for mutable operation.
func (m *Money) Floor(scale int) error {
	if m.IsInvalid() {
		return ErrMoneyInvalid
	}

	pow := scalePow(scale)
	shifted := m.amount.Mul(pow).Floor()
	m.amount = shifted.Div(pow)

	if amountDegenerate(m.amount) {
		m.Invalidate()
		return ErrMoneyInvalid
	}

	return nil
}

// FlooredErr returns a new Money rounded toward negative infinity to the specified scale
// (immutable operation with error). Uses value receiver for immutable operation.
func (m Money) FlooredErr(scale int) (Money, error) {
	result := m // copy
	err := result.Floor(scale)
	return result, err
}

// Floored returns a new Money rounded toward negative infinity to the specified scale
// (immutable operation without error). Returns invalid Money on error.
// Uses value receiver for immutable operation.
func (m Money) Floored(scale int) Money {
	result, _ := m.FlooredErr(scale)
	return result
}
