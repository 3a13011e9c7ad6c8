// Package grids provides integer coordinate math for grid-based games:
// points, axis-aligned rectangles, and 4-way/8-way directions.
package grids

// Rect represents an axis-aligned rectangle of grid cells.
// Right and bottom edges are exclusive, matching slice-index conventions.
type Rect struct {
	X int `yaml:"x" json:"x"` // Top-left corner position
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"` // Width and height
	H int `yaml:"h" json:"h"`
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Centered creates a rectangle of the given dimensions centered on p.
// Odd sizes bias toward the top-left, like integer division.
func Centered(p Point, w, h int) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns the number of cells in the rectangle.
func (r Rect) Area() int {
	return r.W * r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint returns true if p is inside this rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Shifted returns the rectangle translated by p.
func (r Rect) Shifted(p Point) Rect {
	return Rect{X: r.X + p.X, Y: r.Y + p.Y, W: r.W, H: r.H}
}

// Coords returns every cell in the rectangle in reading order:
// left-to-right, then top-to-bottom. An empty rectangle yields nil.
func (r Rect) Coords() []Point {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	out := make([]Point, 0, r.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
