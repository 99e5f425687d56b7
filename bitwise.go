package exactnum

import "math"

// ToInt32 implements the spec's ToInt32 coercion: truncate toward zero,
// reduce modulo 2^32, reinterpret as signed 32-bit. NaN and ±Infinity
// coerce to 0; every finite value is truncated through float64 and wrapped
// modulo 2^32, matching the JS ToInt32 rule this family of methods exists
// to model.
func (n Number) ToInt32() int32 {
	if n.val.isNaN() || n.val.isPosInf() || n.val.isNegInf() {
		return 0
	}
	f := n.toFloat64Approx()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	truncated := math.Trunc(f)
	wrapped := uint32(int64(truncated)) //nolint:gosec // intentional modulo-2^32 wraparound, per ToInt32
	return int32(wrapped)               //nolint:gosec // reinterpret as signed, per ToInt32
}

func int32Number(v int32) Number { return From(int64(v)) }

// BitAndI32 performs ToInt32 coercion on both operands and returns their
// bitwise AND as a Number.
func (n Number) BitAndI32(other Number) Number { return int32Number(n.ToInt32() & other.ToInt32()) }

// BitOrI32 performs ToInt32 coercion on both operands and returns their
// bitwise OR as a Number.
func (n Number) BitOrI32(other Number) Number { return int32Number(n.ToInt32() | other.ToInt32()) }

// BitXorI32 performs ToInt32 coercion on both operands and returns their
// bitwise XOR as a Number.
func (n Number) BitXorI32(other Number) Number { return int32Number(n.ToInt32() ^ other.ToInt32()) }

// BitNotI32 performs ToInt32 coercion and returns the bitwise complement.
func (n Number) BitNotI32() Number { return int32Number(^n.ToInt32()) }

// ShlI32 performs ToInt32 coercion on the receiver and shifts left by
// (shift.ToInt32() & 31) bits.
func (n Number) ShlI32(shift Number) Number {
	return int32Number(n.ToInt32() << (uint32(shift.ToInt32()) & 31))
}

// ShrI32 performs ToInt32 coercion on the receiver and shifts right
// (arithmetic, sign-extending) by (shift.ToInt32() & 31) bits.
func (n Number) ShrI32(shift Number) Number {
	return int32Number(n.ToInt32() >> (uint32(shift.ToInt32()) & 31))
}
