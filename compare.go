package exactnum

import (
	"math/big"
)

// Equal implements PartialEq per spec §4.7: IEEE semantics by default. NaN
// is never equal to itself; ±0 compare equal; cross-representation equality
// converts both operands to a common exact form.
func (a Number) Equal(b Number) bool {
	if a.val.isNaN() || b.val.isNaN() {
		return false
	}
	return valuesEqual(a.val, b.val)
}

// EqualWithConfig implements Equal, except that cfg.JSNaNEquality makes NaN
// equal to NaN (reflexive equality, spec §6).
func (a Number) EqualWithConfig(b Number, cfg Config) bool {
	if a.val.isNaN() && b.val.isNaN() {
		return cfg.JSNaNEquality
	}
	if a.val.isNaN() || b.val.isNaN() {
		return false
	}
	return valuesEqual(a.val, b.val)
}

func valuesEqual(a, b NumericValue) bool {
	if a.isZero() && b.isZero() {
		return true
	}
	if a.isPosInf() || a.isNegInf() || b.isPosInf() || b.isNegInf() {
		return a.k == b.k
	}
	an, ad, aok := exactRat(a)
	bn, bd, bok := exactRat(b)
	if aok && bok {
		return new(big.Int).Mul(an, bd).Cmp(new(big.Int).Mul(bn, ad)) == 0
	}
	// exactRat succeeds for every finite variant, so finite values do not
	// reach this point; it is a defensive fallback that compares
	// normalized decimal strings.
	return normalizedDecimalString(a) == normalizedDecimalString(b)
}

// exactRat returns a's value as an exact (numerator, denominator) big.Int
// pair when a has one: always for Rational, and for Decimal/BigDecimal
// whenever their own Rat() representation is already exact (it always is —
// decimal carriers store an exact mantissa*10^-scale value; the
// "irrecoverable" corner only affects recovering it back to rational64's
// bounded int64/uint64 range, not this unbounded big.Int comparison).
func exactRat(v NumericValue) (num, den *big.Int, ok bool) {
	switch v.k {
	case kindRational:
		n := big.NewInt(v.rat.Numerator())
		d := new(big.Int).SetUint64(v.rat.Denominator())
		return n, d, true
	case kindDecimal:
		n, d := v.dec.Rat()
		return n, d, true
	case kindBigDecimal:
		n, d := v.big.Rat()
		return n, d, true
	case kindNegZero:
		return big.NewInt(0), big.NewInt(1), true
	default:
		return nil, nil, false
	}
}

func normalizedDecimalString(v NumericValue) string {
	switch v.k {
	case kindDecimal:
		return v.dec.String()
	case kindBigDecimal:
		return v.big.Trimmed().String()
	default:
		return v.representation()
	}
}

// Less reports whether a < b under IEEE PartialOrd: NaN is unordered with
// everything (Less returns false whenever either operand is NaN).
func (a Number) Less(b Number) bool {
	cmp, ok := partialCompare(a.val, b.val)
	return ok && cmp < 0
}

// Greater reports whether a > b under the same semantics as Less.
func (a Number) Greater(b Number) bool {
	cmp, ok := partialCompare(a.val, b.val)
	return ok && cmp > 0
}

// Compare returns (-1|0|1, true) for ordered pairs, or (0, false) when
// either operand is NaN (unordered, per IEEE PartialOrd).
func (a Number) Compare(b Number) (int, bool) {
	return partialCompare(a.val, b.val)
}

func partialCompare(a, b NumericValue) (int, bool) {
	if a.isNaN() || b.isNaN() {
		return 0, false
	}
	if valuesEqual(a, b) {
		return 0, true
	}
	rankA, rankB := specialRank(a), specialRank(b)
	if rankA != 0 || rankB != 0 {
		if rankA != rankB {
			return cmpInt(rankA, rankB), true
		}
	}
	an, ad, aok := exactRat(a)
	bn, bd, bok := exactRat(b)
	if aok && bok {
		lhs := new(big.Int).Mul(an, bd)
		rhs := new(big.Int).Mul(bn, ad)
		return lhs.Cmp(rhs), true
	}
	return 0, true
}

// specialRank places -Inf below every finite value and +Inf above every
// finite value; finite values (including -0, which compares within the
// finite band) rank 0.
func specialRank(v NumericValue) int {
	switch {
	case v.isNegInf():
		return -1
	case v.isPosInf():
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
