package advanced

// The divide and conquer solvers. Both split the points around the median x,
// solve each half, and then look for a closer pair straddling the split line.
// They differ only in how the strip around the line gets sorted by y.

// Divide and conquer, sorting the strip at every level. Each level costs
// O(n log n), giving T(n) = 2T(n/2) + O(n log n) = O(n log^2 n).
func NLog2N(points []Point) Distance {
	if len(points) <= 3 {
		return BruteForce(points)
	}

	median := medianX(points)
	left, right := splitX(points, median) // median goes left if len(points) is odd

	bound := NLog2N(left).Min(NLog2N(right))

	strip := filterStrip(points, median, bound)
	sortByY(strip)

	return bound.Min(StripMerge(strip, bound))
}

// Divide and conquer, sorting by y once up front. The input is copied, so the
// caller's order is untouched.
func NLogN(points []Point) Distance {
	return nlognSorted(sortedByY(points))
}

// Splitting is stable, so if the input is sorted by y, so is every half, and so
// is every strip filtered from it. That drops the per level sort, giving
// T(n) = 2T(n/2) + O(n) = O(n log n).
func nlognSorted(points []Point) Distance {
	if len(points) <= 3 {
		return BruteForce(points)
	}

	median := medianX(points)
	left, right := splitX(points, median)

	bound := nlognSorted(left).Min(nlognSorted(right))

	strip := filterStrip(points, median, bound)

	return bound.Min(StripMerge(strip, bound))
}
