// Closest pair of points for Go.
//
// Given a set of points in the plane, this package finds the smallest distance
// between any two of them. Three solvers are provided: brute force in O(n^2),
// and two divide and conquer solvers in O(n log^2 n) and O(n log n). They all
// return the same distance and differ only in speed.
package closestpair

import (
	"github.com/osuushi/closestpair/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Distance = advanced.Distance
type Variant = advanced.Variant

const (
	BruteForce = advanced.BruteForceVariant
	NLog2N     = advanced.NLog2NVariant
	NLogN      = advanced.NLogNVariant
)

// Returned, wrapped, for points that have a NaN or infinite coordinate.
var ErrInvalidInput = errors.New("invalid input")

// Find the smallest distance between any two of the points, using the given
// solver. With fewer than two points there is no pair, and the distance is
// undefined. That is not an error.
//
// The points are not modified or reordered.
func ClosestPairDistance(points []Point, variant Variant) (result Distance, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = advanced.Undefined()
			err = recoveredErr
		}
	}()
	if err := Validate(points); err != nil {
		return advanced.Undefined(), err
	}
	return variant.Solve(points), nil
}

// Check that every point has finite coordinates. The solvers assume this, and
// would otherwise quietly return garbage.
func Validate(points []Point) error {
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrInvalidInput, "point %d (%v, %v) is not finite", i, p.X, p.Y)
		}
	}
	return nil
}

func ParseVariant(name string) (Variant, error) {
	return advanced.ParseVariant(name)
}

// All variants, slowest first.
func Variants() []Variant {
	return advanced.Variants()
}
