// Package rational64 implements the lowest carrier on the promotion ladder:
// a reduced fraction of two signed 64-bit-range integers, held without heap
// allocation. Every arithmetic method is overflow-aware: on overflow the
// receiver is marked invalid (denominator == 0) instead of wrapping, so the
// caller can decide to promote to a wider carrier.
package rational64

import "math"

// Rational64 represents an exact fraction numerator/denominator.
// Uses denominator == 0 to represent an invalid state (overflow or division
// by zero), mirroring the carrier's "no silent wraparound" contract.
type Rational64 struct {
	numerator   int64  // signed numerator
	denominator uint64 // always positive when valid; 0 marks invalid
}

// New creates a rational number from numerator/denominator, reduced to
// lowest terms. A zero denominator yields the invalid value.
func New(numerator int64, denominator uint64) (r Rational64) {
	if denominator == 0 {
		return Rational64{numerator: numerator, denominator: 0}
	}
	if numerator == 0 {
		return Rational64{numerator: 0, denominator: 1}
	}
	r = Rational64{numerator: numerator, denominator: denominator}
	r.Reduce()
	return r
}

// NewFromInt creates a rational number equal to the given integer.
func NewFromInt(value int64) Rational64 {
	return Rational64{numerator: value, denominator: 1}
}

// NewFromFloat64 converts a float64 to the rational it represents via
// IEEE-754 decomposition. Returns the invalid value for NaN, +-Inf, or when
// the integer value would overflow int64. Values whose exact denominator
// would exceed 2^63 are rounded to a multiple of 2^-63.
func NewFromFloat64(value float64) (r Rational64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Rational64{numerator: 0, denominator: 0}
	}
	if value == 0.0 {
		return Rational64{numerator: 0, denominator: 1}
	}
	r = float64ToRationalExact(value)
	if r.IsValid() {
		r.Reduce()
	}
	return r
}

// Zero returns 0/1.
func Zero() Rational64 { return Rational64{numerator: 0, denominator: 1} }

// One returns 1/1.
func One() Rational64 { return Rational64{numerator: 1, denominator: 1} }

// IsValid reports whether the value has a positive denominator.
func (r Rational64) IsValid() bool { return r.denominator > 0 }

// IsInvalid reports the overflow/division-by-zero sentinel state.
func (r Rational64) IsInvalid() bool { return r.denominator == 0 }

// Invalidate marks the receiver invalid in place.
func (r *Rational64) Invalidate() { r.denominator = 0 }

// Numerator returns the reduced numerator.
func (r Rational64) Numerator() int64 { return r.numerator }

// Denominator returns the reduced, positive denominator (0 if invalid).
func (r Rational64) Denominator() uint64 { return r.denominator }

// Sign returns -1, 0, or 1. Invalid values report 0.
func (r Rational64) Sign() int {
	if r.IsInvalid() {
		return 0
	}
	switch {
	case r.numerator < 0:
		return -1
	case r.numerator > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the value is the valid zero 0/1.
func (r Rational64) IsZero() bool { return r.IsValid() && r.numerator == 0 }

// IsOne reports whether the value is the valid one 1/1.
func (r Rational64) IsOne() bool { return r.IsValid() && r.numerator == 1 && r.denominator == 1 }

// Negate returns the additive inverse. Negating MinInt64/1 overflows and
// yields the invalid value, matching the carrier's overflow-detection
// contract elsewhere.
func (r Rational64) Negate() Rational64 {
	if r.IsInvalid() {
		return r
	}
	if r.numerator == math.MinInt64 {
		return Rational64{denominator: 0}
	}
	return Rational64{numerator: -r.numerator, denominator: r.denominator}
}

// Terminating reports whether the reduced denominator's only prime factors
// are 2 and 5 — equivalently, whether the decimal expansion is finite.
func (r Rational64) Terminating() bool {
	if r.IsInvalid() {
		return false
	}
	d := r.denominator
	for d%2 == 0 {
		d /= 2
	}
	for d%5 == 0 {
		d /= 5
	}
	return d == 1
}
