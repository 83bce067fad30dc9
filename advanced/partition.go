package advanced

// Stable partition around a vertical line. Points on the line go left. Both
// halves keep the relative order of the input, which the y-sorted solver
// depends on.
func PartitionX(points []Point, x float64) (left, right []Point) {
	for _, p := range points {
		if p.X <= x {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}
	return left, right
}

// Split the points around the median for recursion. Normally this is just
// PartitionX, but if every point lands on the left (the upper half of the x
// values all sit on the median) that would recurse forever. In that case we
// fill the left half with points strictly left of the line, then with points on
// the line in input order until it holds half of the points, and the rest go
// right.
//
// Either way left x <= median <= right x, and both halves preserve input order.
func splitX(points []Point, median float64) (left, right []Point) {
	left, right = PartitionX(points, median)
	if len(left) > 0 && len(right) > 0 {
		return left, right
	}

	left, right = nil, nil
	target := (len(points) + 1) / 2
	below := 0
	for _, p := range points {
		if p.X < median {
			below++
		}
	}
	onLineForLeft := target - below
	for _, p := range points {
		switch {
		case p.X < median:
			left = append(left, p)
		case p.X == median && onLineForLeft > 0:
			left = append(left, p)
			onLineForLeft--
		default:
			right = append(right, p)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		fatalf("partition of %d points around x=%v did not shrink", len(points), median)
	}
	return left, right
}
