package rational64

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	r := New(3, 4)
	assert.True(t, r.IsValid())
	assert.Equal(t, int64(3), r.Numerator())
	assert.Equal(t, uint64(4), r.Denominator())

	reduced := New(6, 8)
	assert.Equal(t, int64(3), reduced.Numerator())
	assert.Equal(t, uint64(4), reduced.Denominator())

	invalid := New(1, 0)
	assert.True(t, invalid.IsInvalid())

	zero := New(0, 5)
	assert.True(t, zero.IsZero())
	assert.Equal(t, uint64(1), zero.Denominator())
}

func TestNewFromInt(t *testing.T) {
	r := NewFromInt(-7)
	assert.Equal(t, int64(-7), r.Numerator())
	assert.Equal(t, uint64(1), r.Denominator())
}

func TestNewFromFloat64Special(t *testing.T) {
	assert.True(t, NewFromFloat64(math.NaN()).IsInvalid())
	assert.True(t, NewFromFloat64(math.Inf(1)).IsInvalid())
	assert.True(t, NewFromFloat64(math.Inf(-1)).IsInvalid())
	assert.True(t, NewFromFloat64(0).IsZero())
	assert.True(t, NewFromFloat64(-0.0).IsZero())
}

func TestNewFromFloat64Exact(t *testing.T) {
	r := NewFromFloat64(0.5)
	assert.Equal(t, int64(1), r.Numerator())
	assert.Equal(t, uint64(2), r.Denominator())

	r2 := NewFromFloat64(0.1)
	assert.True(t, r2.IsValid())
	assert.False(t, r2.Equal(New(1, 10))) // 0.1 is not exactly 1/10 in binary
}

func TestZeroOne(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, One().IsOne())
}

func TestSignAndPredicates(t *testing.T) {
	assert.Equal(t, 1, New(3, 4).Sign())
	assert.Equal(t, -1, New(-3, 4).Sign())
	assert.Equal(t, 0, Zero().Sign())
	assert.Equal(t, 0, Rational64{}.Sign())
}

func TestNegate(t *testing.T) {
	r := New(3, 4).Negate()
	assert.Equal(t, int64(-3), r.Numerator())

	overflow := NewFromInt(math.MinInt64).Negate()
	assert.True(t, overflow.IsInvalid())
}

func TestTerminating(t *testing.T) {
	assert.True(t, New(1, 2).Terminating())
	assert.True(t, New(1, 20).Terminating())
	assert.True(t, New(3, 8).Terminating())
	assert.False(t, New(1, 3).Terminating())
	assert.False(t, New(1, 6).Terminating())
	assert.False(t, Rational64{}.Terminating())
}
