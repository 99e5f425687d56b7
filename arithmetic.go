package exactnum

import (
	"github.com/n-r-w/exactnum/internal/bigdecimal"
	"github.com/n-r-w/exactnum/internal/decimal128"
	"github.com/n-r-w/exactnum/internal/rational64"
)

// Signum returns -1, 0, or +1 for each finite value; NaN's signum is NaN
// itself (spec §4.5).
func (n Number) Signum() Number {
	if n.val.isNaN() {
		return n
	}
	s := n.val.signOf()
	switch {
	case s < 0:
		return withFlag(rationalValue(rational64.NewFromInt(-1), true), n.flag)
	case s > 0:
		return withFlag(rationalValue(rational64.NewFromInt(1), true), n.flag)
	default:
		if n.val.isNegZero() {
			return withFlag(negZeroValue(), n.flag)
		}
		return withFlag(rationalValue(rational64.Zero(), true), n.flag)
	}
}

// Negate returns -n. Negating +0 gives -0 and vice versa; negating an
// infinity flips its sign; NaN negates to NaN.
func (n Number) Negate() Number {
	switch n.val.k {
	case kindNaN:
		return n
	case kindPosInf:
		return withFlag(negInfValue(), n.flag)
	case kindNegInf:
		return withFlag(posInfValue(), n.flag)
	case kindNegZero:
		return withFlag(rationalValue(rational64.Zero(), true), n.flag)
	case kindRational:
		if n.val.rat.IsZero() {
			return withFlag(negZeroValue(), n.flag)
		}
		return withFlag(rationalValue(n.val.rat.Negate(), n.val.terminating), n.flag)
	case kindDecimal:
		return withFlag(decimalValue(n.val.dec.Negate()), n.flag)
	default:
		return withFlag(bigDecimalValue(n.val.big.Negate()), n.flag)
	}
}

type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opMod
)

// Add returns a+b.
func (a Number) Add(b Number) Number { return dispatch(a, b, opAdd) }

// Sub returns a-b.
func (a Number) Sub(b Number) Number { return dispatch(a, b, opSub) }

// Mul returns a*b.
func (a Number) Mul(b Number) Number { return dispatch(a, b, opMul) }

// Div returns a/b.
func (a Number) Div(b Number) Number { return dispatch(a, b, opDiv) }

// Mod returns a%b.
func (a Number) Mod(b Number) Number { return dispatch(a, b, opMod) }

// dispatch handles IEEE specials first, then routes finite pairs to the
// carrier ladder (spec §4.3, §4.5, §4.9's Normal -> Promote -> Special state
// machine).
func dispatch(a, b Number, op binOp) Number {
	flag := Combine(a.flag, b.flag)
	if special, ok := dispatchSpecial(a, b, op); ok {
		return withFlag(special, flag)
	}
	return finiteDispatch(a, b, op, flag)
}

// dispatchSpecial handles any pair involving NaN, ±Infinity, or division
// degeneracies that produce a special. ok is false when both operands are
// finite and the general carrier ladder should run instead.
func dispatchSpecial(a, b Number, op binOp) (NumericValue, bool) {
	if a.val.isNaN() || b.val.isNaN() {
		return nanValue(), true
	}
	aInf, bInf := a.val.isPosInf() || a.val.isNegInf(), b.val.isPosInf() || b.val.isNegInf()
	switch op {
	case opAdd, opSub:
		if aInf && bInf {
			aSign, bSign := infSign(a.val), infSign(b.val)
			if op == opSub {
				bSign = -bSign
			}
			if aSign != bSign {
				return nanValue(), true
			}
			return infValue(aSign), true
		}
		if aInf {
			return infValue(infSign(a.val)), true
		}
		if bInf {
			sign := infSign(b.val)
			if op == opSub {
				sign = -sign
			}
			return infValue(sign), true
		}
	case opMul:
		if aInf || bInf {
			sign := signumForMul(a, b)
			if sign == 0 {
				return nanValue(), true
			}
			return infValue(sign), true
		}
	case opDiv:
		if aInf && bInf {
			return nanValue(), true
		}
		if aInf {
			return infValue(signumForMul(a, b)), true
		}
		if bInf {
			negResult := (signOfWithZero(a.val) < 0) != (infSign(b.val) < 0)
			if negResult {
				return negZeroValue(), true
			}
			return rationalValue(rational64.Zero(), true), true
		}
		if b.val.isZero() {
			return divByZero(a, b), true
		}
	case opMod:
		if aInf {
			return nanValue(), true
		}
		if bInf {
			return a.val, true
		}
		if b.val.isZero() {
			return nanValue(), true
		}
	}
	return NumericValue{}, false
}

func infSign(v NumericValue) int {
	if v.isPosInf() {
		return 1
	}
	return -1
}

func infValue(sign int) NumericValue {
	if sign < 0 {
		return negInfValue()
	}
	return posInfValue()
}

func signumForMul(a, b Number) int {
	sa, sb := signOfWithZero(a.val), signOfWithZero(b.val)
	return sa * sb
}

func signOfWithZero(v NumericValue) int {
	if v.isNegZero() {
		return -1
	}
	if v.isPosInf() {
		return 1
	}
	if v.isNegInf() {
		return -1
	}
	s := v.signOf()
	if s == 0 {
		return 1 // +0 treated as positive for sign-of-product purposes
	}
	return s
}

// divByZero implements a/0 per IEEE semantics: NaN for 0/0, signed infinity
// otherwise.
func divByZero(a, b Number) NumericValue {
	if a.val.isZero() {
		return nanValue()
	}
	sign := signOfWithZero(a.val)
	if b.val.isNegZero() {
		sign = -sign
	}
	return infValue(sign)
}

// finiteDispatch runs the carrier-ladder arithmetic for two finite operands.
func finiteDispatch(a, b Number, op binOp, flag ApproximationFlag) Number {
	rank := carrierRank(a.val)
	if r := carrierRank(b.val); r > rank {
		rank = r
	}
	switch rank {
	case 0:
		if result, ok := rationalOp(a.val.rat, b.val.rat, op); ok {
			return withFlag(result.val, Combine(flag, result.flag))
		}
		rank = 1
		fallthrough
	case 1:
		da, exA, okA := asDecimal128(a.val)
		db, exB, okB := asDecimal128(b.val)
		if okA && okB {
			if result, ok := decimalOp(da, db, op); ok {
				f := Combine(flag, result.flag)
				if !exA || !exB {
					f = Combine(f, RationalApproximation)
				}
				return demote(result.val, f)
			}
		}
		fallthrough
	default:
		ba, exA := asBigDecimal(a.val)
		bb, exB := asBigDecimal(b.val)
		result := bigDecimalOp(ba, bb, op)
		f := Combine(flag, result.flag)
		if !exA || !exB {
			f = Combine(f, RationalApproximation)
		}
		return demote(result.val, f)
	}
}

type opResult struct {
	val  NumericValue
	flag ApproximationFlag
}

func rationalOp(a, b rational64.Rational64, op binOp) (opResult, bool) {
	switch op {
	case opAdd:
		r := a.Added(b)
		if r.IsInvalid() {
			return opResult{}, false
		}
		r = r.Reduced()
		return opResult{val: rationalValue(r, a.Terminating() && b.Terminating())}, true
	case opSub:
		r := a.Subtracted(b)
		if r.IsInvalid() {
			return opResult{}, false
		}
		r = r.Reduced()
		return opResult{val: rationalValue(r, a.Terminating() && b.Terminating())}, true
	case opMul:
		r := a.Multiplied(b)
		if r.IsInvalid() {
			return opResult{}, false
		}
		r = r.Reduced()
		return opResult{val: rationalValue(r, a.Terminating() && b.Terminating())}, true
	case opDiv:
		r := a.Divided(b)
		if r.IsInvalid() {
			return opResult{}, false
		}
		r = r.Reduced()
		// terminating must be recomputed from the result's own denominator
		// (spec §4.5): 1/1 / 3/1 = 1/3 is non-terminating though both
		// operands were terminating.
		return opResult{val: rationalValue(r, r.Terminating())}, true
	case opMod:
		r := a.Moduloed(b)
		if r.IsInvalid() {
			return opResult{}, false
		}
		r = r.Reduced()
		return opResult{val: rationalValue(r, r.Terminating())}, true
	default:
		return opResult{}, false
	}
}

func decimalOp(a, b decimal128.Decimal128, op binOp) (opResult, bool) {
	switch op {
	case opAdd:
		r, ok := decimal128.Add(a, b)
		return opResult{val: decimalValue(r)}, ok
	case opSub:
		r, ok := decimal128.Sub(a, b)
		return opResult{val: decimalValue(r)}, ok
	case opMul:
		r, ok := decimal128.Mul(a, b)
		return opResult{val: decimalValue(r)}, ok
	case opDiv:
		r, exact, ok := decimal128.Quo(a, b)
		if !ok {
			return opResult{}, false
		}
		flag := Exact
		if !exact {
			flag = RationalApproximation
		}
		return opResult{val: decimalValue(r), flag: flag}, true
	case opMod:
		r, exact, ok := decimal128.Mod(a, b)
		if !ok {
			return opResult{}, false
		}
		flag := Exact
		if !exact {
			flag = RationalApproximation
		}
		return opResult{val: decimalValue(r), flag: flag}, true
	default:
		return opResult{}, false
	}
}

func bigDecimalOp(a, b bigdecimal.BigDecimal, op binOp) opResult {
	switch op {
	case opAdd:
		return opResult{val: bigDecimalValue(bigdecimal.Add(a, b))}
	case opSub:
		return opResult{val: bigDecimalValue(bigdecimal.Sub(a, b))}
	case opMul:
		return opResult{val: bigDecimalValue(bigdecimal.Mul(a, b))}
	case opDiv:
		r, exact, ok := bigdecimal.Quo(a, b)
		if !ok {
			return opResult{val: nanValue(), flag: Exact}
		}
		flag := Exact
		if !exact {
			flag = RationalApproximation
		}
		return opResult{val: bigDecimalValue(r), flag: flag}
	case opMod:
		r, exact, ok := bigdecimal.Mod(a, b)
		if !ok {
			return opResult{val: nanValue(), flag: Exact}
		}
		flag := Exact
		if !exact {
			flag = RationalApproximation
		}
		return opResult{val: bigDecimalValue(r), flag: flag}
	default:
		return opResult{val: nanValue()}
	}
}
