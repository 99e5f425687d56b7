package exactnum

import (
	"math"
	"math/big"

	"github.com/n-r-w/exactnum/internal/rational64"
)

// From constructs an exact Number from an integer: always Rational(n/1,
// terminating=true) (spec §4.2).
func From(n int64) Number {
	return Number{val: rationalValue(rational64.NewFromInt(n), true), flag: Exact}
}

// FromFloat64 constructs a Number from a float64 by reading its IEEE bit
// pattern as a rational (spec §4.2's "from_float is exact, not an
// approximation of the decimal the float prints as"). NaN and ±Infinity
// map to the corresponding specials. The result is flagged Exact when the
// float's bits are reproduced exactly; a value whose exact denominator
// would exceed 2^63 is rounded and flagged RationalApproximation, and a
// magnitude that does not fit int64 gives NaN.
func FromFloat64(f float64) Number {
	switch {
	case math.IsNaN(f):
		return NaN()
	case math.IsInf(f, 1):
		return PositiveInfinity()
	case math.IsInf(f, -1):
		return NegativeInfinity()
	}
	r := rational64.NewFromFloat64(f)
	if r.IsInvalid() {
		return NaN()
	}
	if r.IsZero() && math.Signbit(f) {
		return NegativeZero()
	}
	flag := Exact
	got := new(big.Rat).SetFrac(big.NewInt(r.Numerator()), new(big.Int).SetUint64(r.Denominator()))
	if got.Cmp(new(big.Rat).SetFloat64(f)) != 0 {
		flag = RationalApproximation
	}
	return Number{val: rationalValue(r, r.Terminating()), flag: flag}
}

// FromFraction constructs an exact Number from a numerator/denominator pair,
// reduced to lowest terms. Returns NaN if denominator is zero.
func FromFraction(numerator int64, denominator uint64) Number {
	r := rational64.New(numerator, denominator)
	if r.IsInvalid() {
		return NaN()
	}
	r = r.Reduced()
	return Number{val: rationalValue(r, r.Terminating()), flag: Exact}
}

// NaN returns the canonical NaN Number.
func NaN() Number { return Number{val: nanValue()} }

// PositiveInfinity returns +Infinity.
func PositiveInfinity() Number { return Number{val: posInfValue()} }

// NegativeInfinity returns -Infinity.
func NegativeInfinity() Number { return Number{val: negInfValue()} }

// NegativeZero returns -0: equal to +0 under Equal, distinguishable via
// IsNegZero.
func NegativeZero() Number { return Number{val: negZeroValue()} }
