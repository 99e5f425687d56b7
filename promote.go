package exactnum

import (
	"math/big"

	"github.com/n-r-w/exactnum/internal/bigdecimal"
	"github.com/n-r-w/exactnum/internal/decimal128"
	"github.com/n-r-w/exactnum/internal/rational64"
)

// carrierRank orders the three finite carriers for promotion comparisons:
// Rational < Decimal128 < BigDecimal (spec §4.3's ladder).
func carrierRank(v NumericValue) int {
	switch v.k {
	case kindRational:
		return 0
	case kindDecimal:
		return 1
	default:
		return 2
	}
}

// rationalToDecimal128 converts a rational64 value to Decimal128 by long
// division at Decimal128's native precision, mirroring the same
// truncation-detection discipline as carrier-native division (spec §4.5):
// exact reports whether the rational was terminating within 28 digits.
func rationalToDecimal128(r rational64.Rational64) (decimal128.Decimal128, bool, bool) {
	num := decimal128.NewFromInt64(r.Numerator())
	den := decimal128.NewFromInt64(denomAsInt64(r))
	return decimal128.Quo(num, den)
}

// rationalToBigDecimal converts a rational64 value to BigDecimal exactly
// (arbitrary precision never truncates a division it chooses its own
// working precision for, though a non-terminating rational is still only
// approximated to BigDecimal's WorkingPrecision digits).
func rationalToBigDecimal(r rational64.Rational64) (bigdecimal.BigDecimal, bool) {
	num := bigdecimal.NewFromInt64(r.Numerator())
	den := bigdecimal.NewFromInt64(denomAsInt64(r))
	result, exact, _ := bigdecimal.Quo(num, den)
	return result, exact
}

func denomAsInt64(r rational64.Rational64) int64 {
	d := r.Denominator()
	return int64(d) //nolint:gosec // rational64 denominators are always produced from int64-bounded arithmetic
}

func decimal128ToBigDecimal(d decimal128.Decimal128) bigdecimal.BigDecimal {
	mant := d.Coefficient()
	neg := d.Neg()
	return bigdecimal.New(neg, mant, int64(d.Scale()))
}

// asDecimal128 converts any finite NumericValue to Decimal128. ok is false
// only if the conversion itself overflows Decimal128's 28-digit bound (the
// caller must then promote to BigDecimal instead); exact additionally
// reports whether the conversion lost precision (relevant for Rational ->
// Decimal128 when the rational is non-terminating).
func asDecimal128(v NumericValue) (d decimal128.Decimal128, exact bool, ok bool) {
	switch v.k {
	case kindRational:
		return rationalToDecimal128(v.rat)
	case kindDecimal:
		return v.dec, true, true
	default:
		return decimal128.Decimal128{}, false, false
	}
}

// asBigDecimal converts any finite NumericValue to BigDecimal. BigDecimal
// never overflows, but a non-terminating Rational is still only
// approximated to WorkingPrecision digits, so exact reports that.
func asBigDecimal(v NumericValue) (b bigdecimal.BigDecimal, exact bool) {
	switch v.k {
	case kindRational:
		return rationalToBigDecimal(v.rat)
	case kindDecimal:
		return decimal128ToBigDecimal(v.dec), true
	default:
		return v.big, true
	}
}

// demote attempts continued-fraction rational recovery on a Decimal128 or
// BigDecimal result (spec §4.3: "demotion is attempted after every
// operation that produced a Decimal or BigDecimal result"). It never
// clears the approximation flag. Rational and special values pass through
// unchanged.
func demote(v NumericValue, flag ApproximationFlag) Number {
	var num, den *big.Int
	switch v.k {
	case kindDecimal:
		num, den = v.dec.Rat()
	case kindBigDecimal:
		num, den = v.big.Rat()
	default:
		return Number{val: v, flag: flag}
	}
	n, d, ok := recoverRational(num, den)
	if !ok {
		return Number{val: v, flag: flag}
	}
	r := rational64.New(n, uint64AbsOf(d))
	if r.IsInvalid() {
		return Number{val: v, flag: flag}
	}
	return Number{val: rationalValue(r, r.Terminating()), flag: flag}
}

func uint64AbsOf(d int64) uint64 {
	if d < 0 {
		d = -d
	}
	return uint64(d) //nolint:gosec // d is bounded by cfMaxDenom
}
