// Package decimal128 implements the second carrier on the promotion ladder:
// a fixed-precision decimal with up to 28 significant mantissa digits and a
// scale in [0, 28]. Internally the mantissa is held in a *big.Int the same
// way govalues/decimal's "sint" tier represents its big coefficient — but
// every constructor and arithmetic method enforces the 28-digit bound and
// reports overflow instead of silently growing, so the engine can detect
// when to promote to internal/bigdecimal.
package decimal128

import (
	"math/big"
)

// MaxDigits is the maximum number of significant decimal digits a Decimal128
// mantissa may hold (spec: up to 28 significant digits).
const MaxDigits = 28

// MaxScale is the maximum scale (digits after the decimal point).
const MaxScale = 28

var maxMantissa = new(big.Int).Sub(pow10(MaxDigits), big.NewInt(1)) // 10^28 - 1

// Decimal128 represents neg * coef * 10^-scale, where coef is a
// non-negative integer with at most MaxDigits digits and scale is in
// [0, MaxScale]. The zero value represents 0.
type Decimal128 struct {
	neg   bool
	scale uint8
	coef  *big.Int // always non-nil after any constructor; >= 0, < 10^MaxDigits
}

// pow10 returns 10^n as a fresh *big.Int.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func digits(x *big.Int) int {
	if x.Sign() == 0 {
		return 1
	}
	return len(x.Text(10)) - boolToInt(x.Sign() < 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func fits(x *big.Int) bool {
	return x.CmpAbs(maxMantissa) <= 0
}

// New constructs a Decimal128 from a sign, coefficient magnitude, and scale.
// ok is false if coef exceeds MaxDigits digits or scale exceeds MaxScale —
// the caller should promote to bigdecimal in that case.
func New(neg bool, coef *big.Int, scale int) (d Decimal128, ok bool) {
	if scale < 0 || scale > MaxScale {
		return Decimal128{}, false
	}
	if coef.Sign() < 0 {
		neg = !neg
		coef = new(big.Int).Neg(coef)
	}
	if !fits(coef) {
		return Decimal128{}, false
	}
	if coef.Sign() == 0 {
		neg = false
	}
	return Decimal128{neg: neg, scale: uint8(scale), coef: new(big.Int).Set(coef)}, true //nolint:gosec // validated above
}

// NewFromInt64 constructs an exact integer Decimal128 at scale 0.
func NewFromInt64(v int64) Decimal128 {
	neg := v < 0
	coef := new(big.Int).SetInt64(v)
	coef.Abs(coef)
	return Decimal128{neg: neg, scale: 0, coef: coef}
}

// Zero returns the Decimal128 value 0.
func Zero() Decimal128 { return Decimal128{coef: big.NewInt(0)} }

func (d Decimal128) ensure() *big.Int {
	if d.coef == nil {
		return big.NewInt(0)
	}
	return d.coef
}

// Scale returns the number of digits after the decimal point.
func (d Decimal128) Scale() int { return int(d.scale) }

// Coefficient returns the non-negative mantissa magnitude.
func (d Decimal128) Coefficient() *big.Int { return new(big.Int).Set(d.ensure()) }

// Neg reports whether the value is negative (coefficient nonzero and sign bit set).
func (d Decimal128) Neg() bool { return d.neg }

// Sign returns -1, 0, or 1.
func (d Decimal128) Sign() int {
	if d.ensure().Sign() == 0 {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// IsZero reports whether the value is exactly zero.
func (d Decimal128) IsZero() bool { return d.ensure().Sign() == 0 }

// Negate returns -d.
func (d Decimal128) Negate() Decimal128 {
	if d.IsZero() {
		return d
	}
	return Decimal128{neg: !d.neg, scale: d.scale, coef: d.ensure()}
}

// Digits returns the number of significant digits in the coefficient.
func (d Decimal128) Digits() int { return digits(d.ensure()) }

// Rescaled returns d rewritten at the given (larger or equal) scale, or ok=false
// if that would push the coefficient past MaxDigits.
func (d Decimal128) Rescaled(newScale int) (Decimal128, bool) {
	if newScale < int(d.scale) {
		return Decimal128{}, false
	}
	if newScale == int(d.scale) {
		return d, true
	}
	factor := pow10(newScale - int(d.scale))
	coef := new(big.Int).Mul(d.ensure(), factor)
	return New(d.neg, coef, newScale)
}
