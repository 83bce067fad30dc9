package advanced

// Check every pair. This is O(n^2), and is the base case for the divide and
// conquer solvers once a partition gets down to three points.
func BruteForce(points []Point) Distance {
	smallest := Undefined()
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := points[i].DistanceTo(points[j])
			if !smallest.Defined() || d < smallest.value {
				smallest = NewDistance(d)
			}
		}
	}
	return smallest
}
