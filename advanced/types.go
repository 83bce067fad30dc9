package advanced

import (
	"math"
	"strconv"
)

type Point struct {
	X float64
	Y float64
}

// Distance is the result of a closest pair search. A set with fewer than two
// points has no pair, so its distance is undefined rather than some magic
// number. The zero value is undefined.
type Distance struct {
	value   float64
	defined bool
}

func Undefined() Distance {
	return Distance{}
}

func NewDistance(value float64) Distance {
	return Distance{value: value, defined: true}
}

func (d Distance) Defined() bool {
	return d.defined
}

func (d Distance) Value() (float64, bool) {
	return d.value, d.defined
}

// The distance as an upper bound for pruning. Nothing has been found yet when
// the distance is undefined, so everything is in bounds.
func (d Distance) Bound() float64 {
	if !d.defined {
		return math.Inf(1)
	}
	return d.value
}

// Minimum of two distances, where an undefined distance loses to any defined
// one.
func (d Distance) Min(other Distance) Distance {
	if !other.defined {
		return d
	}
	if !d.defined || other.value < d.value {
		return other
	}
	return d
}

func (d Distance) String() string {
	if !d.defined {
		return "undefined"
	}
	return strconv.FormatFloat(d.value, 'g', -1, 64)
}
