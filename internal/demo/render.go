package demo

import (
	"fmt"

	"github.com/vovakirdan/gamekit/ease"
	"github.com/vovakirdan/gamekit/grids"
	"github.com/vovakirdan/gamekit/hashcode"
	"github.com/vovakirdan/gamekit/internal/screen"
)

// floorRunes are the floor tile variants. Each cell picks one by hashing
// its coordinates, so the pattern is stable across frames and runs.
var floorRunes = []rune{'·', '.', ' ', ' ', ' ', ' '}

// facingRune returns the player avatar for a facing direction.
func facingRune(d grids.Direction4) rune {
	switch d {
	case grids.North:
		return '^'
	case grids.East:
		return '>'
	case grids.South:
		return 'v'
	default:
		return '<'
	}
}

// lootColor picks a color by rarity tier.
func lootColor(points int) screen.Color {
	switch {
	case points >= 100:
		return screen.ColorBrightMagenta
	case points >= 20:
		return screen.ColorBrightYellow
	case points >= 5:
		return screen.ColorCyan
	default:
		return screen.ColorYellow
	}
}

// FlashIntensity returns the pickup flash brightness in [0, 1], decaying
// with an eased falloff after each pickup.
func (g *Game) FlashIntensity() float64 {
	total := g.cfg.Run.FlashTicks
	if total <= 0 || g.flash <= 0 {
		return 0
	}
	elapsed := float64(total-g.flash) / float64(total)
	return ease.QuadOut(elapsed, 1.0, 0.0)
}

// Render draws the current state onto the screen buffer, centered.
func (g *Game) Render(s *screen.Screen) {
	s.Clear()

	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	ox := grids.Max((s.Width()-w)/2, 0)
	oy := grids.Max((s.Height()-h-2)/2, 0)
	offset := grids.Pt(ox, oy)

	frame := grids.NewRect(ox, oy, w, h)
	s.DrawBox(frame, screen.ColorGray)

	for _, p := range g.board.Coords() {
		r := floorRunes[hashcode.Point(p)%uint64(len(floorRunes))]
		s.SetPoint(p.Add(offset), r, screen.ColorGray)
	}

	for _, l := range g.loot {
		glyph := '?'
		if runes := []rune(l.Entry.Glyph); len(runes) > 0 {
			glyph = runes[0]
		}
		s.SetPoint(l.Pos.Add(offset), glyph, lootColor(l.Entry.Points))
	}

	playerColor := screen.ColorGreen
	if g.FlashIntensity() > 0.5 {
		playerColor = screen.ColorBrightWhite
	}
	s.SetPoint(g.player.Add(offset), facingRune(g.facing), playerColor)

	g.renderHUD(s, frame)

	switch {
	case g.gameOver:
		s.DrawTextCentered(frame.Center().Y-1, " GAME OVER ", screen.ColorRed)
		s.DrawTextCentered(frame.Center().Y+1, fmt.Sprintf(" final score: %d ", g.score), screen.ColorWhite)
		s.DrawTextCentered(frame.Bottom()+1, "r: new run  q: quit", screen.ColorGray)
	case g.paused:
		s.DrawTextCentered(frame.Center().Y, " PAUSED ", screen.ColorBrightYellow)
	}
}

// renderHUD draws the score and timer line under the board.
func (g *Game) renderHUD(s *screen.Screen, frame grids.Rect) {
	scoreColor := screen.ColorWhite
	if g.FlashIntensity() > 0 {
		scoreColor = screen.ColorBrightYellow
	}

	hud := fmt.Sprintf("score %d  loot %d", g.score, g.collected)
	if g.cfg.Run.DurationTicks > 0 && g.cfg.TickRate > 0 {
		secs := (g.TimeLeft() + g.cfg.TickRate - 1) / g.cfg.TickRate
		hud += fmt.Sprintf("  time %ds", secs)
	}
	s.DrawText(frame.X, frame.Bottom(), hud, scoreColor)
}
