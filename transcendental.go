package exactnum

import (
	"math"
	"math/big"

	"github.com/n-r-w/exactnum/internal/bigdecimal"
	"github.com/n-r-w/exactnum/internal/rational64"
)

// transcendentalPrecisionBits is the informal precision indicator exposed
// via Info() when a result is Transcendental (spec §9's open question:
// "the source declares the field but leaves its semantics informal" — here
// it reports the working precision of the backend actually used).
const transcendentalPrecisionBits = 53 // float64 fallback precision

// transcendentalWorkingDigits bounds the default (non-HighPrecision) Sqrt
// backend's working precision.
const transcendentalWorkingDigits = 40

// Sqrt returns the square root of n. A perfect square of an integer (or an
// exact rational square) is Exact; every other non-negative input is
// Transcendental. Negative finite inputs yield NaN per IEEE 754 §7.2.
func (n Number) Sqrt() Number { return n.sqrtVia(DefaultConfig()) }

// SqrtWithConfig is Sqrt, routing through the arbitrary-precision backend
// when cfg.HighPrecision is set (spec §6's high_precision flag).
func (n Number) SqrtWithConfig(cfg Config) Number { return n.sqrtVia(cfg) }

func (n Number) sqrtVia(cfg Config) Number {
	if n.val.isNaN() {
		return n
	}
	if n.val.isNegInf() || n.val.signOf() < 0 {
		return withFlag(nanValue(), n.flag)
	}
	if n.val.isPosInf() {
		return withFlag(posInfValue(), n.flag)
	}
	if n.val.isZero() {
		return withFlag(rationalValue(rational64.Zero(), true), n.flag)
	}

	num, den, _ := exactRat(n.val)
	precision := int64(transcendentalWorkingDigits)
	if cfg.HighPrecision {
		precision = bigdecimal.WorkingPrecision
	}

	numD := bigdecimal.NewFromBigInt(num)
	denD := bigdecimal.NewFromBigInt(den)

	sqrtNum, exactNum, _ := bigdecimal.Sqrt(numD, precision)
	sqrtDen, exactDen, _ := bigdecimal.Sqrt(denD, precision)
	result, _, _ := bigdecimal.Quo(sqrtNum, sqrtDen)

	if exactNum && exactDen {
		return demote(bigDecimalValue(result), Combine(n.flag, Exact))
	}
	return withFlag(bigDecimalValue(result), Combine(n.flag, Transcendental))
}

// Pow returns n raised to the power exp. An integer exponent on a finite
// base is computed exactly by repeated multiplication; any other exponent
// routes through the ln/exp (Transcendental) path.
func (n Number) Pow(exp Number) Number {
	if n.val.isNaN() || exp.val.isNaN() {
		return withFlag(nanValue(), Combine(n.flag, exp.flag))
	}
	if exp.val.isRational() && exp.val.rat.Denominator() == 1 {
		return n.powInt(exp.val.rat.Numerator())
	}
	if n.Equal(ONE) {
		return withFlag(rationalValue(rational64.One(), true), Combine(n.flag, exp.flag))
	}
	lnN := n.Ln()
	product := exp.Mul(lnN)
	return product.Exp()
}

func (n Number) powInt(exp int64) Number {
	if exp == 0 {
		return withFlag(rationalValue(rational64.One(), true), n.flag)
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := ONE
	base := n
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	if neg {
		return ONE.Div(result)
	}
	return result
}

// Ln returns the natural logarithm of n. ln(1) == 0 exactly; every other
// positive input is Transcendental. Non-positive inputs yield NaN, except
// ln(0) which is -Infinity.
func (n Number) Ln() Number {
	if n.val.isNaN() {
		return n
	}
	if n.val.isZero() {
		return withFlag(negInfValue(), n.flag)
	}
	if n.val.signOf() < 0 {
		return withFlag(nanValue(), n.flag)
	}
	if n.Equal(ONE) {
		return withFlag(rationalValue(rational64.Zero(), true), Combine(n.flag, Exact))
	}
	f := n.toFloat64Approx()
	return withFlag(floatToApproxValue(math.Log(f)), Combine(n.flag, Transcendental))
}

// Exp returns e^n. exp(0) == 1 exactly; every other input is Transcendental.
func (n Number) Exp() Number {
	if n.val.isNaN() {
		return n
	}
	if n.val.isZero() {
		return withFlag(rationalValue(rational64.One(), true), Combine(n.flag, Exact))
	}
	if n.val.isPosInf() {
		return withFlag(posInfValue(), n.flag)
	}
	if n.val.isNegInf() {
		return withFlag(rationalValue(rational64.Zero(), true), n.flag)
	}
	f := n.toFloat64Approx()
	return withFlag(floatToApproxValue(math.Exp(f)), Combine(n.flag, Transcendental))
}

// Sin returns sin(n). sin(0) == 0 exactly (a supplemented special case,
// SPEC_FULL.md §12, grounded on the teacher's pattern of checking exact
// cases before falling through to the general path); every other input is
// Transcendental.
func (n Number) Sin() Number { return n.trig(math.Sin, n.val.isZero(), rational64.Zero()) }

// Cos returns cos(n). cos(0) == 1 exactly.
func (n Number) Cos() Number { return n.trig(math.Cos, n.val.isZero(), rational64.One()) }

// Tan returns tan(n). tan(0) == 0 exactly.
func (n Number) Tan() Number { return n.trig(math.Tan, n.val.isZero(), rational64.Zero()) }

func (n Number) trig(f func(float64) float64, exactCase bool, exactResult rational64.Rational64) Number {
	if n.val.isNaN() || n.val.isPosInf() || n.val.isNegInf() {
		return withFlag(nanValue(), n.flag)
	}
	if exactCase {
		return withFlag(rationalValue(exactResult, true), Combine(n.flag, Exact))
	}
	return withFlag(floatToApproxValue(f(n.toFloat64Approx())), Combine(n.flag, Transcendental))
}

// toFloat64Approx converts n to a float64 for feeding the math-library
// transcendental functions. Precision beyond float64 is intentionally not
// attempted here: sin/cos/tan/ln/exp at arbitrary precision are explicitly
// a non-goal of the spec without the HighPrecision backend, and that
// backend is wired only through Sqrt (the one transcendental the spec
// gives an exactness criterion for).
func (n Number) toFloat64Approx() float64 {
	switch n.val.k {
	case kindRational:
		return float64(n.val.rat.Numerator()) / float64(n.val.rat.Denominator())
	case kindDecimal:
		num, den := n.val.dec.Rat()
		nf, _ := new(big.Float).SetInt(num).Float64()
		df, _ := new(big.Float).SetInt(den).Float64()
		return nf / df
	default:
		num, den := n.val.big.Rat()
		nf, _ := new(big.Float).SetInt(num).Float64()
		df, _ := new(big.Float).SetInt(den).Float64()
		return nf / df
	}
}

func floatToApproxValue(f float64) NumericValue {
	if math.IsNaN(f) {
		return nanValue()
	}
	if math.IsInf(f, 1) {
		return posInfValue()
	}
	if math.IsInf(f, -1) {
		return negInfValue()
	}
	r := rational64.NewFromFloat64(f)
	if r.IsInvalid() {
		return nanValue()
	}
	return rationalValue(r, r.Terminating())
}
