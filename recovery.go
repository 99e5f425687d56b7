package exactnum

import "math/big"

// cfMaxDenom is the spec's load-bearing CF_MAX_DENOM bound (§4.4, §9): the
// same limit is used for both Decimal→Rational and BigDecimal→Rational
// recovery, chosen so the product of two recovered denominators stays
// within 64 bits.
const cfMaxDenom = 1_000_000_000

// cfMaxIterations bounds the continued-fraction expansion as a safety net
// (spec §4.4(c)) independent of the denominator bound, so recovery always
// terminates even for adversarial inputs.
const cfMaxIterations = 64

// recoverRational runs continued-fraction convergents on num/den (an
// arbitrary-precision exact rational) to find the closest rational whose
// denominator does not exceed cfMaxDenom. ok is true when the expansion
// terminated exactly (the value truly is num/den in lowest terms and that
// denominator fits the bound); it is false if the bound or the iteration
// cap was hit first, in which case the caller must keep the value in its
// current carrier.
func recoverRational(num, den *big.Int) (n, d int64, ok bool) {
	if den.Sign() == 0 {
		return 0, 0, false
	}
	neg := (num.Sign() < 0) != (den.Sign() < 0)
	a := new(big.Int).Abs(num)
	b := new(big.Int).Abs(den)

	maxDenom := big.NewInt(cfMaxDenom)

	// Convergent recurrence: num_k = a_k*num_{k-1} + num_{k-2}.
	num0, den0 := big.NewInt(0), big.NewInt(1) // k-2
	num1, den1 := big.NewInt(1), big.NewInt(0) // k-1

	x, y := new(big.Int).Set(a), new(big.Int).Set(b)
	for i := 0; i < cfMaxIterations; i++ {
		if y.Sign() == 0 {
			// Exact termination: x/y fraction fully consumed.
			if num1.CmpAbs(maxDenom) > 0 || den1.CmpAbs(maxDenom) > 0 {
				return 0, 0, false
			}
			nn := num1.Int64()
			dd := den1.Int64()
			if dd < 0 {
				nn, dd = -nn, -dd
			}
			if neg {
				nn = -nn
			}
			return nn, dd, true
		}
		q, r := new(big.Int).QuoRem(x, y, new(big.Int))

		candNum := new(big.Int).Mul(q, num1)
		candNum.Add(candNum, num0)
		candDen := new(big.Int).Mul(q, den1)
		candDen.Add(candDen, den0)

		if candDen.CmpAbs(maxDenom) > 0 {
			return 0, 0, false
		}

		num0, den0 = num1, den1
		num1, den1 = candNum, candDen
		x, y = y, r
	}
	return 0, 0, false
}
