package rational64

import (
	"math"
	"math/bits"
)

// willOverflowUint64Mul reports whether a*b overflows uint64.
func willOverflowUint64Mul(a, b uint64) bool {
	if a == 0 || b == 0 {
		return false
	}
	hi, _ := bits.Mul64(a, b)
	return hi != 0
}

// willOverflowInt64Mul reports whether a*b overflows int64.
func willOverflowInt64Mul(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	aAbs := absInt64ToUint64(a)
	bAbs := absInt64ToUint64(b)
	hi, lo := bits.Mul64(aAbs, bAbs)
	sameSign := (a > 0) == (b > 0)
	if sameSign {
		return hi != 0 || lo > uint64(math.MaxInt64)
	}
	return hi != 0 || lo > 9223372036854775808
}

// mulInt64ByUint64ToInt64 computes a*b as an int64, reporting overflow.
func mulInt64ByUint64ToInt64(a int64, b uint64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	neg := a < 0
	aAbs := absInt64ToUint64(a)
	hi, lo := bits.Mul64(aAbs, b)
	if hi != 0 {
		return 0, false
	}
	if neg {
		limit := uint64(math.MaxInt64) + 1
		if lo > limit {
			return 0, false
		}
		if lo == limit {
			return math.MinInt64, true
		}
		return -int64(lo), true
	}
	if lo > uint64(math.MaxInt64) {
		return 0, false
	}
	return int64(lo), true
}

// uint64ToInt64WithSign converts a magnitude to a signed int64 with the given sign.
func uint64ToInt64WithSign(u uint64, neg bool) (int64, bool) {
	if neg {
		limit := uint64(math.MaxInt64) + 1
		if u > limit {
			return 0, false
		}
		if u == limit {
			return math.MinInt64, true
		}
		return -int64(u), true
	}
	if u > uint64(math.MaxInt64) {
		return 0, false
	}
	return int64(u), true
}

// willOverflowInt64Add reports whether a+b overflows int64.
func willOverflowInt64Add(a, b int64) bool {
	if b > 0 {
		return a > math.MaxInt64-b
	}
	return a < math.MinInt64-b
}

// willOverflowInt64Sub reports whether a-b overflows int64.
func willOverflowInt64Sub(a, b int64) bool {
	if b > 0 {
		return a < math.MinInt64+b
	}
	return a > math.MaxInt64+b
}

// gcdInt64Uint64 computes gcd(|a|, b).
func gcdInt64Uint64(a int64, b uint64) uint64 {
	return gcdUint64(absInt64ToUint64(a), b)
}

// gcdUint64 computes gcd(a, b) via Euclid's algorithm.
func gcdUint64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// absInt64ToUint64 returns |value| as uint64, handling math.MinInt64.
func absInt64ToUint64(value int64) uint64 {
	if value < 0 {
		if value == math.MinInt64 {
			return uint64(math.MaxInt64) + 1
		}
		return uint64(-value)
	}
	return uint64(value)
}

// compare128Bit compares two 128-bit magnitudes given as (hi, lo) pairs.
func compare128Bit(hi1, lo1, hi2, lo2 uint64) int {
	if hi1 < hi2 {
		return -1
	}
	if hi1 > hi2 {
		return 1
	}
	if lo1 < lo2 {
		return -1
	}
	if lo1 > lo2 {
		return 1
	}
	return 0
}

// compareRationalsCrossMul compares aNum/aDenom to cNum/cDenom via 128-bit
// cross-multiplication, returning -1, 0, or 1.
func compareRationalsCrossMul(aNum int64, aDenom uint64, cNum int64, cDenom uint64) int {
	aSign := 1
	if aNum < 0 {
		aSign = -1
	}
	cSign := 1
	if cNum < 0 {
		cSign = -1
	}

	aAbs := absInt64ToUint64(aNum)
	cAbs := absInt64ToUint64(cNum)

	aTimesDHi, aTimesDLo := bits.Mul64(aAbs, cDenom)
	cTimesBHi, cTimesBLo := bits.Mul64(cAbs, aDenom)

	cmpResult := compare128Bit(aTimesDHi, aTimesDLo, cTimesBHi, cTimesBLo)

	if aSign != cSign {
		if aSign < 0 {
			return -1
		}
		return 1
	}
	if aSign < 0 {
		return -cmpResult
	}
	return cmpResult
}

// pow10Table holds 10^0..10^19, the largest range that fits uint64.
var pow10Table = [...]uint64{
	1, 10, 100, 1000, 10000,
	100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000,
	1000000000000000, 10000000000000000, 100000000000000000, 1000000000000000000,
	10000000000000000000,
}

// powerOf10 calculates 10^exp as uint64, reporting overflow.
func powerOf10(exp int) (uint64, bool) {
	if exp < 0 {
		return 0, true
	}
	if exp >= len(pow10Table) {
		return 0, true
	}
	return pow10Table[exp], false
}

// willOverflowInt64MulUint64 reports whether a*b overflows int64.
func willOverflowInt64MulUint64(a int64, b uint64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a > 0 {
		return uint64(a) > uint64(math.MaxInt64)/b
	}
	if a == math.MinInt64 {
		return b > 1
	}
	absA := uint64(-a)
	return absA > (uint64(math.MaxInt64)+1)/b
}
