package exactnum

import (
	"math"
	"math/big"

	"github.com/n-r-w/exactnum/internal/rational64"
)

// ToI32 truncates n toward zero to an int32, returning ErrNoValue rather
// than wrapping when n is out of range, NaN, or infinite. This is the
// fallible coercion of spec §6/§7; ToInt32 in bitwise.go is the separate,
// never-failing JS-style coercion used by the bitwise operators.
func (n Number) ToI32() (int32, error) {
	i, err := n.ToI64()
	if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, ErrNoValue
	}
	return int32(i), nil
}

// ToI64 truncates n toward zero to an int64, returning ErrNoValue on
// NaN/Infinity/out-of-range input rather than panicking.
func (n Number) ToI64() (int64, error) {
	bi, ok := n.truncatedBigInt()
	if !ok || !bi.IsInt64() {
		return 0, ErrNoValue
	}
	return bi.Int64(), nil
}

// ToU32 truncates n toward zero to a uint32, returning ErrNoValue for
// negative, NaN/Infinity, or out-of-range input.
func (n Number) ToU32() (uint32, error) {
	u, err := n.ToU64()
	if err != nil || u > math.MaxUint32 {
		return 0, ErrNoValue
	}
	return uint32(u), nil
}

// ToU64 truncates n toward zero to a uint64, returning ErrNoValue for
// negative, NaN/Infinity, or out-of-range input.
func (n Number) ToU64() (uint64, error) {
	bi, ok := n.truncatedBigInt()
	if !ok || bi.Sign() < 0 || !bi.IsUint64() {
		return 0, ErrNoValue
	}
	return bi.Uint64(), nil
}

// truncatedBigInt returns n truncated toward zero as an exact big.Int, or
// ok=false for NaN/Infinity.
func (n Number) truncatedBigInt() (*big.Int, bool) {
	if n.val.isNaN() || n.val.isPosInf() || n.val.isNegInf() {
		return nil, false
	}
	num, den, ok := exactRat(n.val)
	if !ok {
		return nil, false
	}
	return new(big.Int).Quo(num, den), true
}

// ToDecimal returns n's value as a (mantissa, scale) pair — n ==
// mantissa * 10^-scale — only when n is exactly representable as a
// terminating decimal: a terminating Rational, or a Decimal/BigDecimal
// carrier. Non-terminating rationals (e.g. 1/3) return ErrNoValue, per S8.
func (n Number) ToDecimal() (mantissa *big.Int, scale int, err error) {
	switch n.val.k {
	case kindRational:
		if !n.val.terminating {
			return nil, 0, ErrNoValue
		}
		m, sc := terminatingRationalToDecimal(n.val.rat)
		return m, sc, nil
	case kindDecimal:
		m := n.val.dec.Coefficient()
		if n.val.dec.Neg() {
			m.Neg(m)
		}
		return m, n.val.dec.Scale(), nil
	case kindBigDecimal:
		trimmed := n.val.big.Trimmed()
		if trimmed.Scale() < 0 {
			rescaled, ok := trimmed.Rescaled(0)
			if !ok {
				return nil, 0, ErrNoValue
			}
			trimmed = rescaled
		}
		m := trimmed.Mantissa()
		if trimmed.Neg() {
			m.Neg(m)
		}
		return m, int(trimmed.Scale()), nil
	default:
		return nil, 0, ErrNoValue
	}
}

// terminatingRationalToDecimal rebases r's denominator (known to be
// 2^a * 5^b) to a bare power of ten and reports the resulting mantissa
// and scale, mirroring rationalDisplay's rebasing in display.go.
func terminatingRationalToDecimal(r rational64.Rational64) (mantissa *big.Int, scale int) {
	num := big.NewInt(r.Numerator())
	den := r.Denominator()
	a, b := 0, 0
	d := den
	for d%2 == 0 {
		d /= 2
		a++
	}
	for d%5 == 0 {
		d /= 5
		b++
	}
	sc := a
	if b > sc {
		sc = b
	}
	two, five := big.NewInt(2), big.NewInt(5)
	for i := 0; i < sc-a; i++ {
		num.Mul(num, two)
	}
	for i := 0; i < sc-b; i++ {
		num.Mul(num, five)
	}
	return num, sc
}
