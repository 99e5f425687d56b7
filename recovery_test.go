package exactnum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverRationalSimpleFraction(t *testing.T) {
	n, d, ok := recoverRational(big.NewInt(1), big.NewInt(3))
	assert.True(t, ok)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, int64(3), d)
}

func TestRecoverRationalNegative(t *testing.T) {
	n, d, ok := recoverRational(big.NewInt(-2), big.NewInt(4))
	assert.True(t, ok)
	assert.Equal(t, int64(-1), n)
	assert.Equal(t, int64(2), d)
}

func TestRecoverRationalZeroNumerator(t *testing.T) {
	n, d, ok := recoverRational(big.NewInt(0), big.NewInt(5))
	assert.True(t, ok)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, int64(1), d)
}

func TestRecoverRationalFailsOnZeroDenominator(t *testing.T) {
	_, _, ok := recoverRational(big.NewInt(1), big.NewInt(0))
	assert.False(t, ok)
}

func TestRecoverRationalFailsBeyondDenomBound(t *testing.T) {
	huge := new(big.Int).Add(big.NewInt(cfMaxDenom), big.NewInt(1))
	_, _, ok := recoverRational(big.NewInt(1), huge)
	assert.False(t, ok)
}
