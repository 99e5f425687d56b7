package exactnum

import (
	"github.com/n-r-w/exactnum/internal/bigdecimal"
	"github.com/n-r-w/exactnum/internal/decimal128"
	"github.com/n-r-w/exactnum/internal/rational64"
)

// kind tags the active variant of a NumericValue. The set of carriers and
// specials is closed and every operation switches on it explicitly — see
// SPEC_FULL.md §9: a tagged variant, not an open-dispatch hierarchy.
type kind uint8

const (
	kindRational kind = iota
	kindDecimal
	kindBigDecimal
	kindNaN
	kindPosInf
	kindNegInf
	kindNegZero
)

// NumericValue is the closed sum type described in spec §3: exactly one of
// a 64-bit rational, a fixed-precision decimal, an arbitrary-precision
// decimal, or one of the four IEEE specials (NaN, +Inf, -Inf, -0). It is
// held unexported inside Number; external code never pattern-matches the
// tag directly (see introspect.go's Info()).
type NumericValue struct {
	k           kind
	rat         rational64.Rational64
	dec         decimal128.Decimal128
	big         bigdecimal.BigDecimal
	terminating bool // meaningful only when k == kindRational
}

func rationalValue(r rational64.Rational64, terminating bool) NumericValue {
	return NumericValue{k: kindRational, rat: r, terminating: terminating}
}

func decimalValue(d decimal128.Decimal128) NumericValue {
	return NumericValue{k: kindDecimal, dec: d}
}

func bigDecimalValue(b bigdecimal.BigDecimal) NumericValue {
	return NumericValue{k: kindBigDecimal, big: b}
}

func nanValue() NumericValue        { return NumericValue{k: kindNaN} }
func posInfValue() NumericValue     { return NumericValue{k: kindPosInf} }
func negInfValue() NumericValue     { return NumericValue{k: kindNegInf} }
func negZeroValue() NumericValue    { return NumericValue{k: kindNegZero} }

// isRational reports whether v holds the Rational variant.
func (v NumericValue) isRational() bool   { return v.k == kindRational }
func (v NumericValue) isDecimal() bool    { return v.k == kindDecimal }
func (v NumericValue) isBigDecimal() bool { return v.k == kindBigDecimal }
func (v NumericValue) isNaN() bool        { return v.k == kindNaN }
func (v NumericValue) isPosInf() bool     { return v.k == kindPosInf }
func (v NumericValue) isNegInf() bool     { return v.k == kindNegInf }
func (v NumericValue) isNegZero() bool    { return v.k == kindNegZero }
func (v NumericValue) isSpecial() bool {
	return v.k == kindNaN || v.k == kindPosInf || v.k == kindNegInf || v.k == kindNegZero
}
func (v NumericValue) isFinite() bool { return !v.isNaN() && !v.isPosInf() && !v.isNegInf() }

// isZero reports whether v represents the mathematical value zero under
// any exact-zero variant (Rational 0/1, Decimal 0, BigDecimal 0, or -0).
func (v NumericValue) isZero() bool {
	switch v.k {
	case kindRational:
		return v.rat.IsZero()
	case kindDecimal:
		return v.dec.IsZero()
	case kindBigDecimal:
		return v.big.IsZero()
	case kindNegZero:
		return true
	default:
		return false
	}
}

// signOf returns -1, 0, or +1 for finite values; specials are handled by
// callers (NaN has no sign, infinities are ±1, -0 is 0 with a distinct
// predicate).
func (v NumericValue) signOf() int {
	switch v.k {
	case kindRational:
		return v.rat.Sign()
	case kindDecimal:
		return v.dec.Sign()
	case kindBigDecimal:
		return v.big.Sign()
	case kindPosInf:
		return 1
	case kindNegInf:
		return -1
	default:
		return 0
	}
}

// representation returns the short string name used by info()/S7.
func (v NumericValue) representation() string {
	switch v.k {
	case kindRational:
		return "Rational"
	case kindDecimal:
		return "Decimal"
	case kindBigDecimal:
		return "BigDecimal"
	case kindNaN:
		return "NaN"
	case kindPosInf:
		return "PositiveInfinity"
	case kindNegInf:
		return "NegativeInfinity"
	case kindNegZero:
		return "NegativeZero"
	default:
		return "Unknown"
	}
}
