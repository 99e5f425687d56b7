package rational64

import (
	"fmt"
	"strconv"
)

// Equal reports whether r and other are mathematically equal.
// Invalid operands are never equal to anything, including each other.
func (r Rational64) Equal(other Rational64) bool {
	if r.IsInvalid() || other.IsInvalid() {
		return false
	}
	return compareRationalsCrossMul(r.numerator, r.denominator, other.numerator, other.denominator) == 0
}

// Less reports whether r < other. Invalid operands are never ordered.
func (r Rational64) Less(other Rational64) bool {
	if r.IsInvalid() || other.IsInvalid() {
		return false
	}
	return compareRationalsCrossMul(r.numerator, r.denominator, other.numerator, other.denominator) < 0
}

// Greater reports whether r > other. Invalid operands are never ordered.
func (r Rational64) Greater(other Rational64) bool {
	if r.IsInvalid() || other.IsInvalid() {
		return false
	}
	return compareRationalsCrossMul(r.numerator, r.denominator, other.numerator, other.denominator) > 0
}

// Compare returns -1, 0, or 1 for r <, ==, > other.
// Invalid operands compare equal (0), since they cannot be meaningfully ordered.
func (r Rational64) Compare(other Rational64) int {
	if r.IsInvalid() || other.IsInvalid() {
		return 0
	}
	if r.numerator == 0 && other.numerator == 0 {
		return 0
	}
	return compareRationalsCrossMul(r.numerator, r.denominator, other.numerator, other.denominator)
}

// String renders "numerator/denominator", or just "numerator" when the
// denominator is 1. Invalid values render as "invalid".
func (r Rational64) String() string {
	if r.IsInvalid() {
		return "invalid"
	}
	if r.numerator == 0 {
		return "0"
	}
	if r.denominator == 1 {
		return strconv.FormatInt(r.numerator, 10)
	}
	return fmt.Sprintf("%d/%d", r.numerator, r.denominator)
}
