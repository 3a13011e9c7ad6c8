// Package screen provides a 2D colored character buffer for terminal
// rendering. It decouples the demo's drawing from the terminal: game code
// draws runes and colors into the buffer, and the platform layer turns the
// buffer into styled output.
package screen

import (
	"strings"

	"github.com/vovakirdan/gamekit/grids"
)

// Color is a foreground color slot for a cell. The platform layer maps
// slots to concrete terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Cell is one character cell of the buffer.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is the buffer itself. Out-of-bounds writes are silently clipped
// and out-of-bounds reads return a blank cell, so drawing code does not
// need to bounds-check against resizes.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a screen buffer with the given dimensions.
func New(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle at the origin.
func (s *Screen) Bounds() grids.Rect {
	return grids.NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := grids.Min(oldW, width)
	copyH := grids.Min(oldH, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			s.cells[y][x] = oldCells[y][x]
		}
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune with the default color at the given position.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r})
}

// SetCell places a full cell at the given position.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// SetPoint places a colored rune at the given grid point.
func (s *Screen) SetPoint(p grids.Point, r rune, col Color) {
	s.SetCell(p.X, p.Y, Cell{Rune: r, Color: col})
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the
// screen bounds.
func (s *Screen) DrawText(x, y int, text string, col Color) {
	for i, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Color: col})
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (s *Screen) DrawTextCentered(y int, text string, col Color) {
	x := (s.width - len(text)) / 2
	s.DrawText(x, y, text, col)
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Screen) DrawRect(r grids.Rect, fill rune, col Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: fill, Color: col})
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r grids.Rect, col Color) {
	s.SetCell(r.X, r.Y, Cell{Rune: '┌', Color: col})
	s.SetCell(r.Right()-1, r.Y, Cell{Rune: '┐', Color: col})
	s.SetCell(r.X, r.Bottom()-1, Cell{Rune: '└', Color: col})
	s.SetCell(r.Right()-1, r.Bottom()-1, Cell{Rune: '┘', Color: col})

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetCell(x, r.Y, Cell{Rune: '─', Color: col})
		s.SetCell(x, r.Bottom()-1, Cell{Rune: '─', Color: col})
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetCell(r.X, y, Cell{Rune: '│', Color: col})
		s.SetCell(r.Right()-1, y, Cell{Rune: '│', Color: col})
	}
}

// String converts the buffer to a plain string without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of one row as a string, without styling.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.cells[y][x].Rune)
	}
	return sb.String()
}
