package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Run("zero value is undefined", func(t *testing.T) {
		var d Distance
		assert.False(t, d.Defined())
		assert.Equal(t, Undefined(), d)
		_, ok := d.Value()
		assert.False(t, ok)
		assert.True(t, math.IsInf(d.Bound(), 1))
		assert.Equal(t, "undefined", d.String())
	})

	t.Run("defined", func(t *testing.T) {
		d := NewDistance(0)
		assert.True(t, d.Defined())
		value, ok := d.Value()
		assert.True(t, ok)
		assert.Equal(t, 0.0, value)
		assert.Equal(t, 0.0, d.Bound())
		assert.Equal(t, "0", d.String())
		assert.Equal(t, "1.5", NewDistance(1.5).String())
	})

	t.Run("min", func(t *testing.T) {
		one, two := NewDistance(1), NewDistance(2)
		assert.Equal(t, one, one.Min(two))
		assert.Equal(t, one, two.Min(one))
		assert.Equal(t, one, one.Min(Undefined()))
		assert.Equal(t, one, Undefined().Min(one))
		assert.Equal(t, Undefined(), Undefined().Min(Undefined()))
		// Undefined loses even to zero
		assert.Equal(t, NewDistance(0), Undefined().Min(NewDistance(0)))
	})
}

func TestPointDistanceTo(t *testing.T) {
	a := Point{1, 2}
	b := Point{4, 6}
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, a.DistanceTo(b), b.DistanceTo(a))
	assert.Equal(t, 0.0, a.DistanceTo(a))
	assert.InDelta(t, math.Sqrt2, Point{0, 0}.DistanceTo(Point{-1, -1}), Epsilon)
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{1, -1}.IsFinite())
	assert.False(t, Point{math.NaN(), 0}.IsFinite())
	assert.False(t, Point{0, math.Inf(-1)}.IsFinite())
	assert.False(t, Point{math.Inf(1), 0}.IsFinite())
}

func TestPointDistanceTo_Large(t *testing.T) {
	a := Point{-1e200, 0}
	b := Point{1e200, 0}
	assert.InEpsilon(t, 2e200, a.DistanceTo(b), 1e-12)
}
