// Package bigdecimal implements the third and final carrier on the
// promotion ladder: an arbitrary-precision decimal with a big-integer
// mantissa and a signed scale, used whenever a value's true mantissa would
// not fit Decimal128's 28-digit bound. There is no required canonical form
// (trailing zeros in the mantissa are allowed), so callers that need to
// compare two BigDecimal values must align scales first — see Cmp.
package bigdecimal

import "math/big"

// WorkingPrecision is the number of extra decimal digits computed for
// divisions and transcendental functions before truncation/exactness is
// checked by multiplying back. It is deliberately generous: BigDecimal
// exists precisely for the case where Decimal128's 28 digits were not
// enough, so its own working precision must clear that bar by a wide
// margin.
const WorkingPrecision = 60

// BigDecimal represents neg * mantissa * 10^-scale. mantissa is always
// non-negative; scale may be negative (representing a large integer with
// trailing zeros implied rather than stored).
type BigDecimal struct {
	neg      bool
	scale    int64
	mantissa *big.Int // always non-nil after any constructor, >= 0
}

func pow10(n int64) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// New constructs a BigDecimal from a sign, mantissa, and scale. Unlike
// Decimal128's carrier there is no digit cap, so New never fails; a
// negative mantissa has its sign folded into neg rather than silently
// dropped.
func New(neg bool, mantissa *big.Int, scale int64) BigDecimal {
	m := new(big.Int).Set(mantissa)
	if m.Sign() < 0 {
		neg = !neg
		m.Neg(m)
	}
	if m.Sign() == 0 {
		neg = false
	}
	return BigDecimal{neg: neg, scale: scale, mantissa: m}
}

// NewFromInt64 constructs an exact integer BigDecimal at scale 0.
func NewFromInt64(v int64) BigDecimal {
	m := big.NewInt(v)
	neg := m.Sign() < 0
	m.Abs(m)
	return BigDecimal{neg: neg, scale: 0, mantissa: m}
}

// NewFromBigInt constructs an exact integer BigDecimal at scale 0 from an
// arbitrary-size integer (e.g. a Decimal128 mantissa overflow handoff).
func NewFromBigInt(v *big.Int) BigDecimal {
	return New(v.Sign() < 0, v, 0)
}

// Zero returns the BigDecimal value 0.
func Zero() BigDecimal { return BigDecimal{mantissa: big.NewInt(0)} }

// One returns the BigDecimal value 1.
func One() BigDecimal { return BigDecimal{mantissa: big.NewInt(1)} }

func (d BigDecimal) ensure() *big.Int {
	if d.mantissa == nil {
		return big.NewInt(0)
	}
	return d.mantissa
}

// Scale returns the number of digits after the decimal point (may be negative).
func (d BigDecimal) Scale() int64 { return d.scale }

// Mantissa returns the non-negative mantissa magnitude.
func (d BigDecimal) Mantissa() *big.Int { return new(big.Int).Set(d.ensure()) }

// Neg reports whether the value is negative.
func (d BigDecimal) Neg() bool { return d.neg }

// Sign returns -1, 0, or 1.
func (d BigDecimal) Sign() int {
	if d.ensure().Sign() == 0 {
		return 0
	}
	if d.neg {
		return -1
	}
	return 1
}

// IsZero reports whether the value is exactly zero.
func (d BigDecimal) IsZero() bool { return d.ensure().Sign() == 0 }

// Negate returns -d.
func (d BigDecimal) Negate() BigDecimal {
	if d.IsZero() {
		return d
	}
	return BigDecimal{neg: !d.neg, scale: d.scale, mantissa: d.ensure()}
}

// Digits returns the number of significant digits in the mantissa.
func (d BigDecimal) Digits() int {
	if d.ensure().Sign() == 0 {
		return 1
	}
	return len(d.ensure().Text(10))
}

// Rescaled returns d rewritten at the given scale. Raising the scale always
// succeeds exactly (pads with zero digits). Lowering the scale only
// succeeds exactly if the dropped digits are all zero; ok reports this.
func (d BigDecimal) Rescaled(newScale int64) (BigDecimal, bool) {
	if newScale == d.scale {
		return d, true
	}
	if newScale > d.scale {
		factor := pow10(newScale - d.scale)
		return BigDecimal{neg: d.neg, scale: newScale, mantissa: new(big.Int).Mul(d.ensure(), factor)}, true
	}
	divisor := pow10(d.scale - newScale)
	q, r := new(big.Int).QuoRem(d.ensure(), divisor, new(big.Int))
	if r.Sign() != 0 {
		return BigDecimal{}, false
	}
	return BigDecimal{neg: d.neg, scale: newScale, mantissa: q}, true
}

// Trimmed returns d with trailing mantissa zeros removed (scale lowered to
// match), used to keep values from growing unboundedly after repeated
// multiplication.
func (d BigDecimal) Trimmed() BigDecimal {
	m := new(big.Int).Set(d.ensure())
	scale := d.scale
	ten := big.NewInt(10)
	for m.Sign() != 0 {
		q, r := new(big.Int).QuoRem(m, ten, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		m = q
		scale--
	}
	return BigDecimal{neg: d.neg, scale: scale, mantissa: m}
}
