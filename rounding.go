package exactnum

import (
	"github.com/n-r-w/exactnum/internal/bigdecimal"
	"github.com/n-r-w/exactnum/internal/decimal128"
	"github.com/n-r-w/exactnum/internal/rational64"
)

// roundMode mirrors the three carriers' RoundMode enums (they share the
// same ordering: Floor, Ceil, Trunc, HalfAwayFromZero, HalfTowardPosInf),
// so converting between them is a plain cast.
type roundMode int

const (
	roundFloor roundMode = iota
	roundCeil
	roundTrunc
	roundHalfAwayFromZero
	roundHalfTowardPositiveInfinity
)

// Floor rounds n toward negative infinity. Must not pass through machine
// floating point (spec §4.5); specials, -0 included, pass through
// unchanged.
func (n Number) Floor() Number { return n.roundVia(roundFloor) }

// Ceil rounds n toward positive infinity.
func (n Number) Ceil() Number { return n.roundVia(roundCeil) }

// Trunc rounds n toward zero.
func (n Number) Trunc() Number { return n.roundVia(roundTrunc) }

// Round rounds n to the nearest integer, half away from zero by default.
func (n Number) Round() Number { return n.roundVia(roundHalfAwayFromZero) }

// RoundWithConfig rounds n to the nearest integer using cfg's rounding
// mode: half-toward-positive-infinity when cfg.JSRounding is set, the
// spec default half-away-from-zero otherwise.
func (n Number) RoundWithConfig(cfg Config) Number { return n.roundVia(cfg.roundMode()) }

func (n Number) roundVia(mode roundMode) Number {
	switch n.val.k {
	case kindNaN, kindPosInf, kindNegInf:
		return n
	case kindNegZero:
		return n
	case kindRational:
		r := roundRational(n.val.rat, mode)
		return withFlag(rationalValue(r, true), n.flag)
	case kindDecimal:
		r, ok := n.val.dec.Round(0, decimal128.RoundMode(mode))
		if !ok {
			b := decimal128ToBigDecimal(n.val.dec).Round(0, bigdecimal.RoundMode(mode))
			return demote(bigDecimalValue(b), n.flag)
		}
		return demote(decimalValue(r), n.flag)
	default:
		b := n.val.big.Round(0, bigdecimal.RoundMode(mode))
		return demote(bigDecimalValue(b), n.flag)
	}
}

func roundRational(r rational64.Rational64, mode roundMode) rational64.Rational64 {
	switch mode {
	case roundFloor:
		return r.Floor()
	case roundCeil:
		return r.Ceil()
	case roundTrunc:
		return r.Trunc()
	default:
		return r.Round(rational64.RoundMode(mode))
	}
}

// RoundToDecimalPlaces rounds n to dp digits after the decimal point using
// the spec default half-away-from-zero convention.
func (n Number) RoundToDecimalPlaces(dp int) Number {
	return n.roundToDecimalPlacesVia(dp, roundHalfAwayFromZero)
}

// RoundToDecimalPlacesWithConfig is RoundToDecimalPlaces under cfg's
// rounding mode.
func (n Number) RoundToDecimalPlacesWithConfig(dp int, cfg Config) Number {
	return n.roundToDecimalPlacesVia(dp, cfg.roundMode())
}

func (n Number) roundToDecimalPlacesVia(dp int, mode roundMode) Number {
	switch n.val.k {
	case kindNaN, kindPosInf, kindNegInf, kindNegZero:
		return n
	case kindRational:
		r := n.val.rat.RoundToDecimalPlaces(dp, rational64.RoundMode(mode))
		if r.IsInvalid() {
			b, _ := rationalToBigDecimal(n.val.rat)
			return demote(bigDecimalValue(b.Round(int64(dp), bigdecimal.RoundMode(mode))), n.flag)
		}
		return withFlag(rationalValue(r, r.Terminating()), n.flag)
	case kindDecimal:
		r, ok := n.val.dec.Round(dp, decimal128.RoundMode(mode))
		if !ok {
			b := decimal128ToBigDecimal(n.val.dec).Round(int64(dp), bigdecimal.RoundMode(mode))
			return demote(bigDecimalValue(b), n.flag)
		}
		return demote(decimalValue(r), n.flag)
	default:
		b := n.val.big.Round(int64(dp), bigdecimal.RoundMode(mode))
		return demote(bigDecimalValue(b), n.flag)
	}
}
