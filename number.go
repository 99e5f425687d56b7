// Package exactnum is an exact-arithmetic scalar library: Number preserves
// mathematical equality whenever a representation exists to do so, and
// explicitly marks a result as approximate when exactness is unavoidable.
// Unlike machine floating point, 0.1 + 0.2 is exactly 0.3.
package exactnum

import "github.com/n-r-w/exactnum/internal/rational64"

// Number is the public scalar type: a NumericValue paired with the
// ApproximationFlag that tracks whether it is the true mathematical result
// of the operations that produced it. Number is an immutable value type;
// every method returns a new Number rather than mutating the receiver.
type Number struct {
	val  NumericValue
	flag ApproximationFlag
}

// ZERO is the canonical exact zero, Rational(0/1).
var ZERO = Number{val: rationalValue(rational64.Zero(), true)}

// ONE is the canonical exact one, Rational(1/1).
var ONE = Number{val: rationalValue(rational64.One(), true)}

// IsExact reports whether n carries no approximation at all.
func (n Number) IsExact() bool { return n.flag == Exact }

// IsTranscendental reports whether n's flag is Transcendental.
func (n Number) IsTranscendental() bool { return n.flag == Transcendental }

// IsRationalApproximation reports whether n's flag is RationalApproximation.
func (n Number) IsRationalApproximation() bool { return n.flag == RationalApproximation }

// IsNaN reports whether n is the NaN special.
func (n Number) IsNaN() bool { return n.val.isNaN() }

// IsInfinite reports whether n is +Infinity or -Infinity.
func (n Number) IsInfinite() bool { return n.val.isPosInf() || n.val.isNegInf() }

// IsNegInfinity reports whether n is exactly -Infinity.
func (n Number) IsNegInfinity() bool { return n.val.isNegInf() }

// IsZero reports whether n represents the mathematical value zero, under
// any zero variant including -0.
func (n Number) IsZero() bool { return n.val.isZero() }

// IsNegZero reports whether n is specifically the -0 variant (distinct
// from +0 only by this predicate; equality treats them the same).
func (n Number) IsNegZero() bool { return n.val.isNegZero() }

// Representation returns the short variant name (S7): "Rational",
// "Decimal", "BigDecimal", "NaN", "PositiveInfinity", "NegativeInfinity",
// or "NegativeZero".
func (n Number) Representation() string { return n.val.representation() }

func withFlag(v NumericValue, f ApproximationFlag) Number { return Number{val: v, flag: f} }
