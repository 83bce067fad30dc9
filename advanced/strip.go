package advanced

import "math"

// Find the closest pair within a strip around the dividing line. The strip must
// be sorted by ascending y. A point only needs comparing against the points
// above it that are less than bound away vertically, and packing limits those
// to a handful, so this is linear in the strip size.
//
// The result is undefined if no pair was close enough to compare. The caller is
// responsible for combining the result with bound.
func StripMerge(strip []Point, bound Distance) Distance {
	limit := bound.Bound()
	smallest := Undefined()
	for i := range strip {
		for j := i + 1; j < len(strip) && strip[j].Y-strip[i].Y < limit; j++ {
			d := strip[i].DistanceTo(strip[j])
			if !smallest.Defined() || d < smallest.value {
				smallest = NewDistance(d)
			}
		}
	}
	return smallest
}

// Collect the points within bound of the vertical line at x, preserving order.
func filterStrip(points []Point, x float64, bound Distance) []Point {
	limit := bound.Bound()
	var strip []Point
	for _, p := range points {
		if math.Abs(p.X-x) < limit {
			strip = append(strip, p)
		}
	}
	return strip
}
