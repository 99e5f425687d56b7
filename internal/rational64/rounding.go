package rational64

// Reduce puts the receiver into lowest terms in place, dividing numerator
// and denominator by their gcd. Invalid values remain invalid.
func (r *Rational64) Reduce() {
	if r.IsInvalid() {
		return
	}
	if r.numerator == 0 {
		r.denominator = 1
		return
	}
	gcd := gcdInt64Uint64(r.numerator, r.denominator)
	if gcd > 1 {
		absNum := absInt64ToUint64(r.numerator)
		absNum /= gcd
		newNum, ok := uint64ToInt64WithSign(absNum, r.numerator < 0)
		if !ok {
			r.Invalidate()
			return
		}
		r.numerator = newNum
		r.denominator /= gcd
	}
}

// Reduced returns r reduced to lowest terms without modifying r.
func (r Rational64) Reduced() Rational64 {
	result := r
	result.Reduce()
	return result
}

// RoundMode selects how a fractional remainder is resolved to an integer.
type RoundMode int

const (
	// RoundFloor rounds toward negative infinity.
	RoundFloor RoundMode = iota
	// RoundCeil rounds toward positive infinity.
	RoundCeil
	// RoundTrunc rounds toward zero.
	RoundTrunc
	// RoundHalfAwayFromZero resolves an exact half away from zero; this is
	// the default "round" convention (spec §4.5).
	RoundHalfAwayFromZero
	// RoundHalfTowardPositiveInfinity resolves an exact half toward +Inf;
	// used by the JS-compatibility rounding mode.
	RoundHalfTowardPositiveInfinity
)

// roundDivision computes round(numerator/denominator) under mode.
func roundDivision(numerator int64, denominator uint64, mode RoundMode) int64 {
	if denominator == 0 || numerator == 0 {
		return 0
	}

	var quotient int64
	var remainder uint64
	if numerator >= 0 {
		quotient = numerator / int64(denominator) //nolint:gosec // denominator fits int64 range by construction
		remainder = uint64(numerator) % denominator
	} else {
		absNum := uint64(-numerator)
		quotient = -int64(absNum / denominator) //nolint:gosec // quotient magnitude bounded by numerator
		remainder = absNum % denominator
	}

	if remainder == 0 {
		return quotient
	}

	switch mode {
	case RoundTrunc:
		return quotient
	case RoundFloor:
		if numerator < 0 {
			return quotient - 1
		}
		return quotient
	case RoundCeil:
		if numerator > 0 {
			return quotient + 1
		}
		return quotient
	case RoundHalfAwayFromZero:
		doubleRemainder := remainder * 2
		if doubleRemainder >= denominator {
			if numerator > 0 {
				return quotient + 1
			}
			return quotient - 1
		}
		return quotient
	case RoundHalfTowardPositiveInfinity:
		doubleRemainder := remainder * 2
		if doubleRemainder > denominator {
			if numerator > 0 {
				return quotient + 1
			}
			return quotient - 1
		}
		if doubleRemainder == denominator {
			if numerator > 0 {
				return quotient + 1
			}
			return quotient
		}
		return quotient
	default:
		return quotient
	}
}

// Floor rounds r toward negative infinity, returning an exact integer Rational64.
func (r Rational64) Floor() Rational64 {
	if r.IsInvalid() {
		return r
	}
	return NewFromInt(roundDivision(r.numerator, r.denominator, RoundFloor))
}

// Ceil rounds r toward positive infinity, returning an exact integer Rational64.
func (r Rational64) Ceil() Rational64 {
	if r.IsInvalid() {
		return r
	}
	return NewFromInt(roundDivision(r.numerator, r.denominator, RoundCeil))
}

// Trunc rounds r toward zero, returning an exact integer Rational64.
func (r Rational64) Trunc() Rational64 {
	if r.IsInvalid() {
		return r
	}
	return NewFromInt(roundDivision(r.numerator, r.denominator, RoundTrunc))
}

// Round rounds r to the nearest integer under mode (half-away-from-zero or
// half-toward-+Inf), returning an exact integer Rational64.
func (r Rational64) Round(mode RoundMode) Rational64 {
	if r.IsInvalid() {
		return r
	}
	return NewFromInt(roundDivision(r.numerator, r.denominator, mode))
}

// RoundToDecimalPlaces rounds r to dp decimal places under mode, returning a
// reduced Rational64 with denominator dividing 10^dp.
func (r Rational64) RoundToDecimalPlaces(dp int, mode RoundMode) Rational64 {
	if r.IsInvalid() {
		return r
	}
	if dp < 0 {
		return r.roundToPowersOfTen(-dp, mode)
	}
	if r.numerator == 0 {
		return r
	}

	scaleFactor, overflow := powerOf10(dp)
	if overflow {
		return Rational64{denominator: 0}
	}

	if scaleFactor%r.denominator == 0 {
		multiplier := scaleFactor / r.denominator
		if willOverflowInt64MulUint64(r.numerator, multiplier) {
			return r
		}
		newNum, _ := mulInt64ByUint64ToInt64(r.numerator, multiplier)
		return New(newNum, scaleFactor)
	}

	if willOverflowInt64MulUint64(r.numerator, scaleFactor) {
		return Rational64{denominator: 0}
	}
	scaledNumerator, _ := mulInt64ByUint64ToInt64(r.numerator, scaleFactor)
	roundedInt := roundDivision(scaledNumerator, r.denominator, mode)
	return New(roundedInt, scaleFactor)
}

// roundToPowersOfTen handles RoundToDecimalPlaces for a negative dp (rounding
// to a multiple of 10^|dp|).
func (r Rational64) roundToPowersOfTen(negDp int, mode RoundMode) Rational64 {
	scaleFactor, overflow := powerOf10(negDp)
	if overflow {
		return Rational64{denominator: 0}
	}
	if willOverflowUint64Mul(r.denominator, scaleFactor) {
		return Rational64{denominator: 0}
	}
	scaledDenominator := r.denominator * scaleFactor
	roundedInt := roundDivision(r.numerator, scaledDenominator, mode)
	if willOverflowInt64MulUint64(roundedInt, scaleFactor) {
		return Rational64{denominator: 0}
	}
	finalNumerator, _ := mulInt64ByUint64ToInt64(roundedInt, scaleFactor)
	return NewFromInt(finalNumerator)
}
