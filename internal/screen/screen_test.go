package screen

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gamekit/grids"
)

func TestNewScreen(t *testing.T) {
	s := New(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	if s.Bounds() != grids.NewRect(0, 0, 80, 24) {
		t.Errorf("Bounds() = %+v, expected origin 80x24", s.Bounds())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := New(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorRed})
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	s.SetPoint(grids.Pt(2, 3), '@', ColorGreen)
	if c := s.GetCell(2, 3); c.Rune != '@' || c.Color != ColorGreen {
		t.Errorf("GetCell(2, 3) = %+v, expected green '@'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if c := s.GetCell(-1, 0); c.Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
	if c := s.GetCell(100, 0); c.Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := New(10, 10)
	s.DrawRect(s.Bounds(), 'X', ColorBlue)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("after Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := New(10, 3)

	s.DrawText(2, 1, "hi", ColorDefault)
	if got := s.Row(1); got != "  hi      " {
		t.Errorf("Row(1) = %q, expected %q", got, "  hi      ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "long", ColorDefault)
	if got := s.Row(0); got != "        lo" {
		t.Errorf("Row(0) = %q, expected %q", got, "        lo")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := New(11, 1)
	s.DrawTextCentered(0, "abc", ColorDefault)
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", got, "    abc    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := New(5, 4)
	s.DrawBox(grids.NewRect(0, 0, 5, 4), ColorDefault)

	want := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := New(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize gave %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != 'A' {
		t.Error("content inside the new bounds should be preserved")
	}

	s.Resize(8, 5)
	if s.GetCell(1, 1).Rune != 'A' {
		t.Error("content should survive growing")
	}
	if s.GetCell(7, 4).Rune != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := New(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected blanks", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, expected blanks", got)
	}
}
