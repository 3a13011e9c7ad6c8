package grids

// Point is a signed cell coordinate on a grid. Y grows downward, matching
// terminal rows and most 2D screen buffers.
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point with both components multiplied by s.
func (p Point) Scale(s int) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Index returns the point's offset into a flat slice that stores a grid of
// the given width row by row (y*width + x). The point must be non-negative
// and within the row; callers on ragged data should bounds-check first.
func (p Point) Index(width int) int {
	return p.Y*width + p.X
}

// Quadrant returns which quadrant the point is in:
//
//	1: +X, +Y    2: -X, +Y    3: -X, -Y    4: +X, -Y
//
// Zeroes count as positive, so the origin is in quadrant 1.
func (p Point) Quadrant() int {
	switch {
	case p.X >= 0 && p.Y >= 0:
		return 1
	case p.X < 0 && p.Y >= 0:
		return 2
	case p.X < 0 && p.Y < 0:
		return 3
	default:
		return 4
	}
}

// Step returns the point moved one cell in the given 4-way direction.
func (p Point) Step(d Direction4) Point {
	return p.Add(d.Deltas())
}

// Step8 returns the point moved one cell in the given 8-way direction.
func (p Point) Step8(d Direction8) Point {
	return p.Add(d.Deltas())
}
