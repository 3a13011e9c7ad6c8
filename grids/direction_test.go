package grids

import (
	"math"
	"testing"
)

func TestDirection4Rotate(t *testing.T) {
	tests := []struct {
		name     string
		start    Direction4
		steps    int
		expected Direction4
	}{
		{"one step clockwise", North, 1, East},
		{"half turn", North, 2, South},
		{"counter-clockwise", North, -1, West},
		{"wraps both ways", North.RotateBy(5), -11, South},
		{"full turn is identity", West, 4, West},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.RotateBy(tc.steps); got != tc.expected {
				t.Errorf("RotateBy(%d) = %v, expected %v", tc.steps, got, tc.expected)
			}
		})
	}

	if North.Rotate(Clockwise) != East {
		t.Error("Rotate(Clockwise) from North should be East")
	}
	if North.Rotate(CounterClockwise) != West {
		t.Error("Rotate(CounterClockwise) from North should be West")
	}
}

func TestDirection4Flip(t *testing.T) {
	if North.Flip() != South {
		t.Error("North flipped should be South")
	}
	if West.Flip() != East {
		t.Error("West flipped should be East")
	}
	if East.Flip().Flip() != East {
		t.Error("double flip should be identity")
	}
}

func TestDirection4Deltas(t *testing.T) {
	tests := []struct {
		dir      Direction4
		expected Point
	}{
		{North, Pt(0, -1)},
		{East, Pt(1, 0)},
		{South, Pt(0, 1)},
		{West, Pt(-1, 0)},
	}

	for _, tc := range tests {
		if got := tc.dir.Deltas(); got != tc.expected {
			t.Errorf("%v.Deltas() = %+v, expected %+v", tc.dir, got, tc.expected)
		}
	}
}

func TestDirection4Radians(t *testing.T) {
	// Graphics convention: 0 is east, clockwise-positive on a y-down grid.
	tau := 2 * math.Pi
	tests := []struct {
		dir      Direction4
		expected float64
	}{
		{East, 0},
		{South, tau / 4},
		{West, tau / 2},
		{North, tau / 4 * 3},
	}

	for _, tc := range tests {
		if got := tc.dir.Radians(); math.Abs(got-tc.expected) > 1e-10 {
			t.Errorf("%v.Radians() = %f, expected %f", tc.dir, got, tc.expected)
		}
	}
}

func TestDirection4Axes(t *testing.T) {
	if !East.IsHorizontal() || South.IsHorizontal() {
		t.Error("IsHorizontal should hold for East/West only")
	}
	if !North.IsVertical() || West.IsVertical() {
		t.Error("IsVertical should hold for North/South only")
	}
}

func TestDirection4To8(t *testing.T) {
	tests := []struct {
		dir      Direction4
		expected Direction8
	}{
		{North, North8},
		{East, East8},
		{South, South8},
		{West, West8},
	}

	for _, tc := range tests {
		if got := tc.dir.Direction8(); got != tc.expected {
			t.Errorf("%v.Direction8() = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestDirection8Rotate(t *testing.T) {
	tests := []struct {
		name     string
		start    Direction8
		steps    int
		expected Direction8
	}{
		{"one step", North8, 1, NorthEast8},
		{"two steps", North8, 2, East8},
		{"counter-clockwise", North8, -1, NorthWest8},
		{"half turn", North8, 4, South8},
		{"wraps both ways", North8.RotateBy(5), -11, East8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.start.RotateBy(tc.steps); got != tc.expected {
				t.Errorf("RotateBy(%d) = %v, expected %v", tc.steps, got, tc.expected)
			}
		})
	}

	if NorthEast8.Rotate(Clockwise) != East8 {
		t.Error("Rotate(Clockwise) from NorthEast8 should be East8")
	}
	if South8.Rotate(CounterClockwise) != SouthEast8 {
		t.Error("Rotate(CounterClockwise) from South8 should be SouthEast8")
	}
}

func TestDirection8Flip(t *testing.T) {
	if North8.Flip() != South8 {
		t.Error("North8 flipped should be South8")
	}
	if SouthWest8.Flip() != NorthEast8 {
		t.Error("SouthWest8 flipped should be NorthEast8")
	}
	if East8.Flip().Flip() != East8 {
		t.Error("double flip should be identity")
	}
}

func TestDirection8Deltas(t *testing.T) {
	tests := []struct {
		dir      Direction8
		expected Point
	}{
		{East8, Pt(1, 0)},
		{NorthWest8, Pt(-1, -1)},
		{SouthEast8, Pt(1, 1)},
		{South8, Pt(0, 1)},
	}

	for _, tc := range tests {
		if got := tc.dir.Deltas(); got != tc.expected {
			t.Errorf("%v.Deltas() = %+v, expected %+v", tc.dir, got, tc.expected)
		}
	}
}

func TestDirection8Radians(t *testing.T) {
	tau := 2 * math.Pi
	tests := []struct {
		dir      Direction8
		expected float64
	}{
		{East8, 0},
		{SouthEast8, tau / 8},
		{West8, tau / 8 * 4},
		{North8, tau / 8 * 6},
	}

	for _, tc := range tests {
		if got := tc.dir.Radians(); math.Abs(got-tc.expected) > 1e-10 {
			t.Errorf("%v.Radians() = %f, expected %f", tc.dir, got, tc.expected)
		}
	}
}

func TestDirectionTextRoundTrip(t *testing.T) {
	for _, dir := range Directions4 {
		text, err := dir.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", dir, err)
		}
		var back Direction4
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != dir {
			t.Errorf("round trip of %v gave %v", dir, back)
		}
	}

	for _, dir := range Directions8 {
		text, err := dir.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", dir, err)
		}
		var back Direction8
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != dir {
			t.Errorf("round trip of %v gave %v", dir, back)
		}
	}

	var d4 Direction4
	if err := d4.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("UnmarshalText should reject unknown names")
	}
}
