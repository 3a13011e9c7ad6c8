package grids

import (
	"fmt"
	"math"
)

// Direction4 is a four-way compass direction. Values start at North and
// increment clockwise, so they can be converted to ints and used in
// rotational arithmetic directly.
type Direction4 int

const (
	North Direction4 = iota
	East
	South
	West
)

// Directions4 lists all four directions in rotation order.
var Directions4 = [4]Direction4{North, East, South, West}

// Rotate returns the direction turned by the given rotation.
func (d Direction4) Rotate(rot Rotation) Direction4 {
	return d.RotateBy(rot.StepsClockwise())
}

// RotateBy returns the direction rotated by the given number of steps
// clockwise. Negative steps go counter-clockwise; any magnitude wraps.
func (d Direction4) RotateBy(stepsClockwise int) Direction4 {
	return Directions4[wrapIndex(int(d)+stepsClockwise, len(Directions4))]
}

// Flip returns the opposite direction.
func (d Direction4) Flip() Direction4 {
	return d.RotateBy(2)
}

// Radians returns the direction's angle using the graphics convention:
// 0 is east and positive angles turn clockwise, which on a y-down grid
// means North is 3/4 of a full turn.
func (d Direction4) Radians() float64 {
	return float64(wrapIndex(int(d)-1, 4)) * math.Pi / 2
}

// Deltas returns the cell offset of one step in this direction.
func (d Direction4) Deltas() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	default:
		return Point{X: -1, Y: 0}
	}
}

// IsHorizontal reports whether the direction is East or West.
func (d Direction4) IsHorizontal() bool {
	return d == East || d == West
}

// IsVertical reports whether the direction is North or South.
func (d Direction4) IsVertical() bool {
	return d == North || d == South
}

// Direction8 returns the equivalent eight-way direction.
func (d Direction4) Direction8() Direction8 {
	return Directions8[wrapIndex(int(d)*2, len(Directions8))]
}

// String returns the direction's compass name.
func (d Direction4) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction4(%d)", int(d))
	}
}

// MarshalText encodes the direction as its compass name.
func (d Direction4) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a compass name produced by MarshalText.
func (d *Direction4) UnmarshalText(text []byte) error {
	for _, dir := range Directions4 {
		if dir.String() == string(text) {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("grids: unknown direction %q", text)
}

// Direction8 is an eight-way compass direction. Values start at North and
// increment clockwise.
type Direction8 int

const (
	North8 Direction8 = iota
	NorthEast8
	East8
	SouthEast8
	South8
	SouthWest8
	West8
	NorthWest8
)

// Directions8 lists all eight directions in rotation order.
var Directions8 = [8]Direction8{
	North8, NorthEast8, East8, SouthEast8,
	South8, SouthWest8, West8, NorthWest8,
}

// Rotate returns the direction turned by the given rotation.
func (d Direction8) Rotate(rot Rotation) Direction8 {
	return d.RotateBy(rot.StepsClockwise())
}

// RotateBy returns the direction rotated by the given number of steps
// clockwise. Negative steps go counter-clockwise; any magnitude wraps.
func (d Direction8) RotateBy(stepsClockwise int) Direction8 {
	return Directions8[wrapIndex(int(d)+stepsClockwise, len(Directions8))]
}

// Flip returns the opposite direction.
func (d Direction8) Flip() Direction8 {
	return d.RotateBy(4)
}

// Radians returns the direction's angle using the graphics convention:
// 0 is east and positive angles turn clockwise.
func (d Direction8) Radians() float64 {
	return float64(wrapIndex(int(d)-2, 8)) * math.Pi / 4
}

// Deltas returns the cell offset of one step in this direction. Diagonal
// steps move one cell on both axes.
func (d Direction8) Deltas() Point {
	switch d {
	case North8:
		return Point{X: 0, Y: -1}
	case NorthEast8:
		return Point{X: 1, Y: -1}
	case East8:
		return Point{X: 1, Y: 0}
	case SouthEast8:
		return Point{X: 1, Y: 1}
	case South8:
		return Point{X: 0, Y: 1}
	case SouthWest8:
		return Point{X: -1, Y: 1}
	case West8:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: -1, Y: -1}
	}
}

// String returns the direction's compass name.
func (d Direction8) String() string {
	switch d {
	case North8:
		return "north"
	case NorthEast8:
		return "northeast"
	case East8:
		return "east"
	case SouthEast8:
		return "southeast"
	case South8:
		return "south"
	case SouthWest8:
		return "southwest"
	case West8:
		return "west"
	case NorthWest8:
		return "northwest"
	default:
		return fmt.Sprintf("Direction8(%d)", int(d))
	}
}

// MarshalText encodes the direction as its compass name.
func (d Direction8) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a compass name produced by MarshalText.
func (d *Direction8) UnmarshalText(text []byte) error {
	for _, dir := range Directions8 {
		if dir.String() == string(text) {
			*d = dir
			return nil
		}
	}
	return fmt.Errorf("grids: unknown direction %q", text)
}

// Rotation is a turn sense: clockwise or counter-clockwise. It carries no
// angle of its own, only a sense relative to some direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// StepsClockwise returns the signed step count of one such turn:
// 1 for Clockwise, -1 for CounterClockwise.
func (r Rotation) StepsClockwise() int {
	if r == CounterClockwise {
		return -1
	}
	return 1
}

// String returns the rotation's name.
func (r Rotation) String() string {
	if r == CounterClockwise {
		return "counterclockwise"
	}
	return "clockwise"
}

// wrapIndex reduces i into [0, n) with euclidean semantics, so negative
// indices wrap backward instead of mirroring like Go's % operator.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
