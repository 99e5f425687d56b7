package decimal128

import "math/big"

// RoundMode mirrors rational64.RoundMode for this carrier's native rounding.
type RoundMode int

const (
	RoundFloor RoundMode = iota
	RoundCeil
	RoundTrunc
	RoundHalfAwayFromZero
	RoundHalfTowardPositiveInfinity
)

// Round rounds d to dp digits after the decimal point under mode.
func (d Decimal128) Round(dp int, mode RoundMode) (Decimal128, bool) {
	if dp < 0 {
		dp = 0
	}
	if dp >= int(d.scale) {
		return d, true
	}
	drop := int(d.scale) - dp
	divisor := pow10(drop)
	quotient, remainder := new(big.Int).QuoRem(d.ensure(), divisor, new(big.Int))
	if remainder.Sign() != 0 {
		quotient = applyRounding(quotient, remainder, divisor, d.neg, mode)
	}
	return New(d.neg, quotient, dp)
}

func applyRounding(quotient, remainder, divisor *big.Int, neg bool, mode RoundMode) *big.Int {
	one := big.NewInt(1)
	switch mode {
	case RoundTrunc:
		return quotient
	case RoundFloor:
		if neg {
			return new(big.Int).Add(quotient, one)
		}
		return quotient
	case RoundCeil:
		if !neg {
			return new(big.Int).Add(quotient, one)
		}
		return quotient
	case RoundHalfAwayFromZero:
		doubled := new(big.Int).Lsh(remainder, 1)
		if doubled.CmpAbs(divisor) >= 0 {
			return new(big.Int).Add(quotient, one)
		}
		return quotient
	case RoundHalfTowardPositiveInfinity:
		doubled := new(big.Int).Lsh(remainder, 1)
		cmp := doubled.CmpAbs(divisor)
		if cmp > 0 || (cmp == 0 && !neg) {
			return new(big.Int).Add(quotient, one)
		}
		return quotient
	default:
		return quotient
	}
}

// Floor rounds toward negative infinity to an integer (scale 0).
func (d Decimal128) Floor() (Decimal128, bool) { return d.Round(0, RoundFloor) }

// Ceil rounds toward positive infinity to an integer (scale 0).
func (d Decimal128) Ceil() (Decimal128, bool) { return d.Round(0, RoundCeil) }

// Trunc rounds toward zero to an integer (scale 0).
func (d Decimal128) Trunc() (Decimal128, bool) { return d.Round(0, RoundTrunc) }

// Mod computes a - floor(a/b)*b using the same truncation-detection
// discipline as Quo: exact reports whether the division underlying the
// floor was itself exact.
func Mod(a, b Decimal128) (result Decimal128, exact bool, ok bool) {
	q, exact, ok := Quo(a, b)
	if !ok {
		return Decimal128{}, false, false
	}
	qFloor, ok := q.Floor()
	if !ok {
		return Decimal128{}, false, false
	}
	prod, ok := Mul(qFloor, b)
	if !ok {
		return Decimal128{}, false, false
	}
	result, ok = Sub(a, prod)
	return result, exact, ok
}
