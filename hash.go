package exactnum

import (
	"hash/fnv"
	"strconv"
)

// nanHashSentinel is the fixed distinct hash value for NaN (spec §4.7): NaN
// is only reachable through OrderedNumber, whose reflexive equality makes
// every NaN equal to every other NaN, so they must all hash identically.
const nanHashSentinel uint64 = 0x4e614e5f68617368 // "NaN_hash" as bytes

// hash64 implements the collection wrapper's required strategy (spec
// §4.7): normalize to canonical rational form before hashing whenever
// possible. For Rational, hash (tag, numerator, denominator) directly. For
// Decimal/BigDecimal, attempt rational recovery first; on success hash as
// above, otherwise hash the normalized decimal string. All zero variants
// (including -0) hash identically to Rational 0/1.
func (n Number) hash64() uint64 {
	if n.val.isNaN() {
		return nanHashSentinel
	}
	if n.val.isZero() {
		return hashRational(0, 1)
	}
	if n.val.isPosInf() {
		return hashTag("+Inf")
	}
	if n.val.isNegInf() {
		return hashTag("-Inf")
	}

	if n.val.isRational() {
		return hashRational(n.val.rat.Numerator(), n.val.rat.Denominator())
	}

	num, den, ok := exactRat(n.val)
	if ok {
		if rn, rd, recovered := recoverRational(num, den); recovered {
			return hashRational(rn, uint64AbsOf(rd))
		}
	}
	return hashTag(normalizedDecimalString(n.val))
}

func hashRational(num int64, den uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte("Rational|"))
	h.Write([]byte(strconv.FormatInt(num, 10)))
	h.Write([]byte("|"))
	h.Write([]byte(strconv.FormatUint(den, 10)))
	return h.Sum64()
}

func hashTag(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
