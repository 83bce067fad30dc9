package advanced

import (
	"math"
	"math/rand"
	"sort"
)

// Tolerance used when comparing distances computed along different paths. The
// solvers do the same arithmetic on the same pairs, so in practice results
// agree exactly, but callers comparing variants should not rely on it.
const Epsilon = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Euclidean distance. Hypot avoids overflow when squaring large differences.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Median of the x values, in expected linear time. For an even count this is
// the mean of the two middle values, halved separately so that huge coordinates
// can't overflow.
func medianX(points []Point) float64 {
	xs := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
	}
	mid := len(xs) / 2
	upper := selectKth(xs, mid)
	if len(xs)%2 == 1 {
		return upper
	}
	// Everything before mid is now <= upper, so the lower middle is their max
	lower := xs[0]
	for _, x := range xs[1:mid] {
		lower = math.Max(lower, x)
	}
	// Rounding can push the midpoint outside [lower, upper] for subnormal or
	// adjacent values
	return math.Min(math.Max(lower/2+upper/2, lower), upper)
}

// Quickselect. Rearranges xs so that xs[k] holds the value it would have if xs
// were sorted, everything before it is <= and everything after it is >=.
//
// The pivot is random, so no fixed input can force quadratic time. Only the
// arrangement of xs depends on it, not the returned value.
func selectKth(xs []float64, k int) float64 {
	lo, hi := 0, len(xs)-1
	for lo < hi {
		pivot := xs[lo+rand.Intn(hi-lo+1)]
		i, j := lo, hi
		for i <= j {
			for xs[i] < pivot {
				i++
			}
			for xs[j] > pivot {
				j--
			}
			if i <= j {
				xs[i], xs[j] = xs[j], xs[i]
				i++
				j--
			}
		}
		switch {
		case k <= j:
			hi = j
		case k >= i:
			lo = i
		default:
			return xs[k]
		}
	}
	return xs[k]
}

// Returns a copy of the points stably sorted by ascending y. The input is left
// alone.
func sortedByY(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sortByY(sorted)
	return sorted
}

func sortByY(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Y < points[j].Y
	})
}
