package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBruteForce(t *testing.T) {
	assert.False(t, BruteForce(nil).Defined())
	assert.False(t, BruteForce([]Point{{1, 1}}).Defined())

	assertDistance(t, 1, BruteForce([]Point{{0, 0}, {1, 0}}))
	assertDistance(t, math.Sqrt2, BruteForce([]Point{{0, 0}, {2, 0}, {1, 1}}))
	assertDistance(t, 0, BruteForce([]Point{{5, 5}, {9, 9}, {5, 5}}))
}

// Helpers

func assertDistance(t *testing.T, expected float64, actual Distance, msgAndArgs ...interface{}) {
	t.Helper()
	value, ok := actual.Value()
	if assert.True(t, ok, msgAndArgs...) {
		assert.InDelta(t, expected, value, Epsilon, msgAndArgs...)
	}
}
