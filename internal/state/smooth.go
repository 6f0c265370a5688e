package state

import "math"

// Smooth applies one pass of a three-point moving average to a closed
// stroke. The first and last points are kept exactly; every interior point
// becomes the mean of itself and its neighbours, all read from the input.
// The input is not modified.
func Smooth(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if len(points) < 3 {
		return out
	}
	for i := 1; i < len(points)-1; i++ {
		prev, cur, next := points[i-1], points[i], points[i+1]
		out[i] = Point{
			X: (prev.X + cur.X + next.X) / 3,
			Y: (prev.Y + cur.Y + next.Y) / 3,
		}
	}
	return out
}

// Damp returns the point to record when p arrives for an open stroke while
// real-time smoothing is on. With two or more points already recorded the
// result is the midpoint of p and the second-to-last point; otherwise p is
// returned unchanged.
func Damp(points []Point, p Point) Point {
	if len(points) < 2 {
		return p
	}
	return p.Midpoint(points[len(points)-2])
}

// RoundPoints rounds every coordinate to the given number of decimal places.
// A non-positive places returns an unmodified copy.
func RoundPoints(points []Point, places int) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	if places <= 0 {
		return out
	}
	scale := math.Pow(10, float64(places))
	for i, p := range out {
		out[i] = Point{X: math.Round(p.X*scale) / scale, Y: math.Round(p.Y*scale) / scale}
	}
	return out
}
