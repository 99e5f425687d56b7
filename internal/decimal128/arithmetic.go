package decimal128

import "math/big"

// align brings a and b to a common scale (the larger of the two), reporting
// ok=false if doing so would overflow MaxDigits.
func align(a, b Decimal128) (ac, bc Decimal128, ok bool) {
	scale := int(a.scale)
	if int(b.scale) > scale {
		scale = int(b.scale)
	}
	ac, ok = a.Rescaled(scale)
	if !ok {
		return Decimal128{}, Decimal128{}, false
	}
	bc, ok = b.Rescaled(scale)
	if !ok {
		return Decimal128{}, Decimal128{}, false
	}
	return ac, bc, true
}

func signedMagnitude(d Decimal128) *big.Int {
	m := d.ensure()
	if d.neg {
		return new(big.Int).Neg(m)
	}
	return new(big.Int).Set(m)
}

// Add returns a+b. ok is false on overflow (caller promotes to bigdecimal).
func Add(a, b Decimal128) (Decimal128, bool) {
	ac, bc, ok := align(a, b)
	if !ok {
		return Decimal128{}, false
	}
	sum := new(big.Int).Add(signedMagnitude(ac), signedMagnitude(bc))
	return New(sum.Sign() < 0, sum, int(ac.scale))
}

// Sub returns a-b. ok is false on overflow.
func Sub(a, b Decimal128) (Decimal128, bool) {
	return Add(a, b.Negate())
}

// Mul returns a*b at scale a.Scale()+b.Scale(), trimming trailing zeros
// before the digit-count overflow check. ok is false on overflow.
func Mul(a, b Decimal128) (Decimal128, bool) {
	coef := new(big.Int).Mul(a.ensure(), b.ensure())
	scale := int(a.scale) + int(b.scale)
	neg := a.neg != b.neg
	coef, scale = trimTrailingZeros(coef, scale)
	return New(neg, coef, scale)
}

func trimTrailingZeros(coef *big.Int, scale int) (*big.Int, int) {
	ten := big.NewInt(10)
	c := new(big.Int).Set(coef)
	for scale > 0 {
		q, r := new(big.Int).QuoRem(c, ten, new(big.Int))
		if r.Sign() != 0 {
			break
		}
		c = q
		scale--
	}
	return c, scale
}

// Quo computes a/b at a fixed internal scale of MaxScale digits, trimming
// trailing zeros afterward. exact reports whether the division was exact
// (no remainder at that precision) — the caller sets RationalApproximation
// when exact is false. ok is false on overflow or division by zero.
func Quo(a, b Decimal128) (q Decimal128, exact bool, ok bool) {
	if b.IsZero() {
		return Decimal128{}, false, false
	}
	shift := MaxScale + int(b.scale) - int(a.scale)
	if shift < 0 {
		shift = 0
	}
	numerator := new(big.Int).Mul(a.ensure(), pow10(shift))
	coefQ, remainder := new(big.Int).QuoRem(numerator, b.ensure(), new(big.Int))
	exact = remainder.Sign() == 0
	neg := a.neg != b.neg
	coefQ, scale := trimTrailingZeros(coefQ, MaxScale)
	d, ok := New(neg, coefQ, scale)
	return d, exact, ok
}

// Cmp compares a and b numerically, returning -1, 0, or 1.
func Cmp(a, b Decimal128) int {
	ac, bc, ok := align(a, b)
	if !ok {
		// Scales too far apart to align within MaxDigits: compare via
		// magnitude/scale heuristics instead of failing — sign first.
		sa, sb := a.Sign(), b.Sign()
		if sa != sb {
			return cmpInt(sa, sb)
		}
		if int(a.scale) == int(b.scale) {
			return cmpBig(signedMagnitude(a), signedMagnitude(b))
		}
		// Fall back to big.Rat-style cross comparison.
		lhs := new(big.Int).Mul(a.ensure(), pow10(int(b.scale)))
		rhs := new(big.Int).Mul(b.ensure(), pow10(int(a.scale)))
		if a.neg {
			lhs.Neg(lhs)
		}
		if b.neg {
			rhs.Neg(rhs)
		}
		return cmpBig(lhs, rhs)
	}
	return cmpBig(signedMagnitude(ac), signedMagnitude(bc))
}

func cmpBig(a, b *big.Int) int { return a.Cmp(b) }

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
