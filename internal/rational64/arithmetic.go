package rational64

import "math"

// addSubCommon implements the shared cross-multiplication logic for Add/Sub.
func (r *Rational64) addSubCommon(other Rational64, isAdd bool) {
	if r.IsInvalid() || other.IsInvalid() {
		r.Invalidate()
		return
	}

	if r.denominator == other.denominator {
		var newNum int64
		var overflow bool
		if isAdd {
			overflow = willOverflowInt64Add(r.numerator, other.numerator)
			newNum = r.numerator + other.numerator
		} else {
			overflow = willOverflowInt64Sub(r.numerator, other.numerator)
			newNum = r.numerator - other.numerator
		}
		if overflow {
			r.Invalidate()
			return
		}
		if newNum == 0 {
			r.numerator, r.denominator = 0, 1
			return
		}
		r.numerator = newNum
		return
	}

	if willOverflowUint64Mul(r.denominator, other.denominator) {
		r.Invalidate()
		return
	}
	newDenom := r.denominator * other.denominator

	term1, ok := mulInt64ByUint64ToInt64(r.numerator, other.denominator)
	if !ok {
		r.Invalidate()
		return
	}
	term2, ok := mulInt64ByUint64ToInt64(other.numerator, r.denominator)
	if !ok {
		r.Invalidate()
		return
	}

	var newNum int64
	var overflow bool
	if isAdd {
		overflow = willOverflowInt64Add(term1, term2)
		newNum = term1 + term2
	} else {
		overflow = willOverflowInt64Sub(term1, term2)
		newNum = term1 - term2
	}
	if overflow {
		r.Invalidate()
		return
	}
	if newNum == 0 {
		r.numerator, r.denominator = 0, 1
		return
	}
	r.numerator, r.denominator = newNum, newDenom
}

// Add adds other into the receiver. Result is not reduced; call Reduce if needed.
// Invalidates on overflow or invalid operands.
func (r *Rational64) Add(other Rational64) { r.addSubCommon(other, true) }

// Sub subtracts other from the receiver. Result is not reduced.
func (r *Rational64) Sub(other Rational64) { r.addSubCommon(other, false) }

// Mul multiplies the receiver by other. Result is not reduced.
func (r *Rational64) Mul(other Rational64) {
	if r.IsInvalid() || other.IsInvalid() {
		r.Invalidate()
		return
	}
	if willOverflowInt64Mul(r.numerator, other.numerator) {
		r.Invalidate()
		return
	}
	if willOverflowUint64Mul(r.denominator, other.denominator) {
		r.Invalidate()
		return
	}
	newNum := r.numerator * other.numerator
	newDenom := r.denominator * other.denominator
	if newNum == 0 {
		r.numerator, r.denominator = 0, 1
		return
	}
	r.numerator, r.denominator = newNum, newDenom
}

// Div divides the receiver by other. Result is not reduced.
// Invalidates on overflow, invalid operands, or division by zero — callers
// needing IEEE zero/infinity semantics must check for zero divisors before
// calling Div and handle them at the NumericValue layer.
func (r *Rational64) Div(other Rational64) {
	if r.IsInvalid() || other.IsInvalid() {
		r.Invalidate()
		return
	}
	if other.numerator == 0 {
		r.Invalidate()
		return
	}

	otherNumAbs := absInt64ToUint64(other.numerator)

	prodNum, ok := mulInt64ByUint64ToInt64(r.numerator, other.denominator)
	if !ok {
		r.Invalidate()
		return
	}
	if willOverflowUint64Mul(r.denominator, otherNumAbs) {
		r.Invalidate()
		return
	}

	newNum := prodNum
	newDenom := r.denominator * otherNumAbs

	if other.numerator < 0 {
		if newNum == math.MinInt64 {
			r.Invalidate()
			return
		}
		newNum = -newNum
	}

	if newNum == 0 {
		r.numerator, r.denominator = 0, 1
		return
	}
	r.numerator, r.denominator = newNum, newDenom
}

// Mod computes the exact remainder a%b = (aNum*bDen) mod (aDen*bNum) / (aDen*bDen),
// reduced to lowest terms. Invalidates on overflow (the caller promotes to a
// wider carrier and retries there) or division by a zero operand.
func (r *Rational64) Mod(other Rational64) {
	if r.IsInvalid() || other.IsInvalid() || other.numerator == 0 {
		r.Invalidate()
		return
	}
	if r.numerator == 0 {
		r.numerator, r.denominator = 0, 1
		return
	}

	aNumTimesBDen, ok := mulInt64ByUint64ToInt64(r.numerator, other.denominator)
	if !ok {
		r.Invalidate()
		return
	}
	bNumAbs := absInt64ToUint64(other.numerator)
	if bNumAbs > uint64(math.MaxInt64) {
		r.Invalidate()
		return
	}
	modulusAbs, ok := mulInt64ByUint64ToInt64(int64(bNumAbs), r.denominator) //nolint:gosec // guarded above
	if !ok || modulusAbs == 0 {
		r.Invalidate()
		return
	}
	if willOverflowUint64Mul(r.denominator, other.denominator) {
		r.Invalidate()
		return
	}
	newDenom := r.denominator * other.denominator

	modulus := absInt64ToUint64(modulusAbs)
	var remainder int64
	if aNumTimesBDen >= 0 {
		remainder = int64(uint64(aNumTimesBDen) % modulus) //nolint:gosec // remainder < modulus <= MaxInt64
	} else {
		rem := absInt64ToUint64(aNumTimesBDen) % modulus
		remainder = -int64(rem) //nolint:gosec // rem < modulus <= MaxInt64
	}

	if remainder == 0 {
		r.numerator, r.denominator = 0, 1
		return
	}
	r.numerator, r.denominator = remainder, newDenom
	r.Reduce()
}

// Added returns r+other without modifying r.
func (r Rational64) Added(other Rational64) Rational64 {
	result := r
	result.Add(other)
	return result
}

// Subtracted returns r-other without modifying r.
func (r Rational64) Subtracted(other Rational64) Rational64 {
	result := r
	result.Sub(other)
	return result
}

// Multiplied returns r*other without modifying r.
func (r Rational64) Multiplied(other Rational64) Rational64 {
	result := r
	result.Mul(other)
	return result
}

// Divided returns r/other without modifying r.
func (r Rational64) Divided(other Rational64) Rational64 {
	result := r
	result.Div(other)
	return result
}

// Moduloed returns r%other without modifying r.
func (r Rational64) Moduloed(other Rational64) Rational64 {
	result := r
	result.Mod(other)
	return result
}
