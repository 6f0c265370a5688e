package sketch

import "LocalSketch/internal/state"

// Sample converts a pointer position reported by the input surface into
// surface-local coordinates. origin is where the surface's (0,0) sits in the
// event's coordinate space.
func Sample(x, y float32, origin state.Point) state.Point {
	return state.Point{X: float64(x) - origin.X, Y: float64(y) - origin.Y}
}
