package state

// Point is a sample in surface-local coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// Stroke is one pointer-down-to-up gesture. A stroke held by History always
// has at least one point.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}

// Clone returns a deep copy of s.
func (s Stroke) Clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	return Stroke{ID: s.ID, Points: pts}
}

// First and Last return the stroke's endpoints.
func (s Stroke) First() Point { return s.Points[0] }
func (s Stroke) Last() Point  { return s.Points[len(s.Points)-1] }

// BoundingBox is the axis-aligned extent of a set of points.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (b BoundingBox) Width() float64  { return b.MaxX - b.MinX }
func (b BoundingBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BoundingBox) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Bounds computes the bounding box of every point across strokes. ok is
// false when there is nothing to measure.
func Bounds(strokes []Stroke) (b BoundingBox, ok bool) {
	for _, s := range strokes {
		for _, p := range s.Points {
			if !ok {
				b = BoundingBox{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
				ok = true
				continue
			}
			if p.X < b.MinX {
				b.MinX = p.X
			}
			if p.X > b.MaxX {
				b.MaxX = p.X
			}
			if p.Y < b.MinY {
				b.MinY = p.Y
			}
			if p.Y > b.MaxY {
				b.MaxY = p.Y
			}
		}
	}
	return b, ok
}
