package bigdecimal

import "math/big"

// bigIntSqrtNewton computes floor(sqrt(n)) via Newton's method on integers:
// the same doubling-precision iteration db47h/decimal's Sqrt uses on its
// decimal limbs (solve t² - n = 0, t_next = ½(t + n/t)), applied directly to
// a big.Int instead of a limb-sliced mantissa.
func bigIntSqrtNewton(n *big.Int) *big.Int {
	if n.Sign() <= 0 {
		return big.NewInt(0)
	}
	two := big.NewInt(2)
	guess := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()/2+1))
	for {
		next := new(big.Int).Quo(n, guess)
		next.Add(next, guess)
		next.Quo(next, two)
		if next.Cmp(guess) >= 0 {
			break
		}
		guess = next
	}
	sq := new(big.Int).Mul(guess, guess)
	for sq.Cmp(n) > 0 {
		guess.Sub(guess, big.NewInt(1))
		sq.Mul(guess, guess)
	}
	return guess
}

// Sqrt computes the square root of x to scale/2+precision fractional
// digits, where scale is x's scale padded to the next even number by one
// trailing zero digit when odd. exact reports whether that padded mantissa
// is a perfect square — in that case the result is exact, has scale/2
// digits, and does not depend on precision. ok is false when x is negative (the
// caller surfaces that as NaN, per IEEE 754).
func Sqrt(x BigDecimal, precision int64) (result BigDecimal, exact bool, ok bool) {
	if x.Sign() < 0 {
		return BigDecimal{}, false, false
	}
	if x.IsZero() {
		return Zero(), true, true
	}

	mant := x.Mantissa()
	scale := x.Scale()
	if scale%2 != 0 {
		mant = new(big.Int).Mul(mant, big.NewInt(10))
		scale++
	}

	root := bigIntSqrtNewton(mant)
	if new(big.Int).Mul(root, root).Cmp(mant) == 0 {
		return New(false, root, scale/2), true, true
	}

	shifted := new(big.Int).Mul(mant, pow10(2*precision))
	approx := bigIntSqrtNewton(shifted)
	return New(false, approx, scale/2+precision), false, true
}
