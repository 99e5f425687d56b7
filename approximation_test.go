package exactnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproximationFlagString(t *testing.T) {
	assert.Equal(t, "Exact", Exact.String())
	assert.Equal(t, "RationalApproximation", RationalApproximation.String())
	assert.Equal(t, "Transcendental", Transcendental.String())
}

func TestCombineIsMonotonic(t *testing.T) {
	assert.Equal(t, Exact, Combine(Exact, Exact))
	assert.Equal(t, RationalApproximation, Combine(Exact, RationalApproximation))
	assert.Equal(t, RationalApproximation, Combine(RationalApproximation, Exact))
	assert.Equal(t, Transcendental, Combine(RationalApproximation, Transcendental))
	assert.Equal(t, Transcendental, Combine(Transcendental, Exact))
}
