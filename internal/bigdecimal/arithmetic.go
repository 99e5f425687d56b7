package bigdecimal

import "math/big"

func align(a, b BigDecimal) (ac, bc BigDecimal) {
	scale := a.scale
	if b.scale > scale {
		scale = b.scale
	}
	ac, _ = a.Rescaled(scale) // raising scale never fails
	bc, _ = b.Rescaled(scale)
	return ac, bc
}

func signedMagnitude(d BigDecimal) *big.Int {
	m := d.ensure()
	if d.neg {
		return new(big.Int).Neg(m)
	}
	return new(big.Int).Set(m)
}

// Add returns a+b, exact (arbitrary precision never overflows).
func Add(a, b BigDecimal) BigDecimal {
	ac, bc := align(a, b)
	sum := new(big.Int).Add(signedMagnitude(ac), signedMagnitude(bc))
	return New(sum.Sign() < 0, sum, ac.scale)
}

// Sub returns a-b.
func Sub(a, b BigDecimal) BigDecimal {
	return Add(a, b.Negate())
}

// Mul returns a*b at scale a.Scale()+b.Scale(), trimmed of trailing zeros.
func Mul(a, b BigDecimal) BigDecimal {
	mant := new(big.Int).Mul(a.ensure(), b.ensure())
	neg := a.neg != b.neg
	return BigDecimal{neg: neg, scale: a.scale + b.scale, mantissa: mant}.Trimmed()
}

// Quo computes a/b to WorkingPrecision fractional digits, or to
// a.scale-b.scale digits when that is larger, before trimming.
// exact reports whether multiplying the quotient back by b reproduces a
// exactly (the spec's mandated truncation-detection discipline). ok is
// false only when b is zero.
func Quo(a, b BigDecimal) (q BigDecimal, exact bool, ok bool) {
	if b.IsZero() {
		return BigDecimal{}, false, false
	}
	shift := WorkingPrecision + b.scale - a.scale
	if shift < 0 {
		shift = 0
	}
	numerator := new(big.Int).Mul(a.ensure(), pow10(shift))
	mant, remainder := new(big.Int).QuoRem(numerator, b.ensure(), new(big.Int))
	neg := a.neg != b.neg
	result := BigDecimal{neg: neg, scale: a.scale - b.scale + shift, mantissa: mant}.Trimmed()

	// Verify by multiplying back, per the spec's mandated discipline: do
	// not trust the remainder check alone, since Trimmed() may have
	// rescaled the quotient.
	back := Mul(result, b)
	exact = remainder.Sign() == 0 && Cmp(back, a) == 0
	return result, exact, true
}

// Cmp compares a and b numerically, returning -1, 0, or 1.
func Cmp(a, b BigDecimal) int {
	ac, bc := align(a, b)
	return signedMagnitude(ac).Cmp(signedMagnitude(bc))
}
