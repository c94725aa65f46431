package randsrc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformRange(t *testing.T) {
	src := New(7)
	for i := 0; i < 10000; i++ {
		u := src.Uniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

func TestGaussPairMoments(t *testing.T) {
	src := New(11)

	const n = 50000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		a, b := src.GaussPair()
		sum += a + b
		sumSq += a*a + b*b
	}

	mean := sum / (2 * n)
	variance := sumSq/(2*n) - mean*mean

	assert.InDelta(t, 0.0, mean, 0.02)
	assert.InDelta(t, 1.0, variance, 0.05)
	assert.False(t, math.IsNaN(mean))
}

func TestSeedReproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Uniform(), b.Uniform())
	}
}
