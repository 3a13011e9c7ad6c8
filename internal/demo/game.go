// Package demo implements gridhopper, the playable demo that exercises the
// gamekit library end to end: tracker-backed controls, grid math for the
// board, a weighted loot table, eased pickup flashes, and hash-variegated
// floor tiles.
//
// The game is pure simulation: it reads keys through an input.Handler and
// draws onto a screen buffer, but knows nothing about terminals or tick
// timers. Given the same seed and the same key script it plays out
// identically, which is what the tests rely on.
package demo

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/gamekit/chance"
	"github.com/vovakirdan/gamekit/grids"
	"github.com/vovakirdan/gamekit/input"
	"github.com/vovakirdan/gamekit/internal/config"
)

// Control is a semantic game action, decoupled from physical keys.
type Control int

const (
	CtrlUp Control = iota
	CtrlDown
	CtrlLeft
	CtrlRight
	CtrlPause
	CtrlRestart
)

// String returns the control's config-file name.
func (c Control) String() string {
	switch c {
	case CtrlUp:
		return "up"
	case CtrlDown:
		return "down"
	case CtrlLeft:
		return "left"
	case CtrlRight:
		return "right"
	case CtrlPause:
		return "pause"
	case CtrlRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ParseControl resolves a config-file control name.
func ParseControl(name string) (Control, error) {
	switch strings.ToLower(name) {
	case "up":
		return CtrlUp, nil
	case "down":
		return CtrlDown, nil
	case "left":
		return CtrlLeft, nil
	case "right":
		return CtrlRight, nil
	case "pause":
		return CtrlPause, nil
	case "restart":
		return CtrlRestart, nil
	default:
		return 0, fmt.Errorf("demo: unknown control %q", name)
	}
}

// moveControls pairs movement controls with their board directions, in the
// priority order used when several are active at once.
var moveControls = [4]struct {
	ctrl Control
	dir  grids.Direction4
}{
	{CtrlUp, grids.North},
	{CtrlDown, grids.South},
	{CtrlLeft, grids.West},
	{CtrlRight, grids.East},
}

// Loot is one collectible on the board.
type Loot struct {
	Pos   grids.Point
	Entry config.LootEntry
}

// Game is a single gridhopper run.
type Game struct {
	cfg     config.Config
	seed    int64
	rng     *rand.Rand
	handler *input.Handler[string, Control]
	picker  *chance.WeightedPicker[config.LootEntry]

	// Raw keys seen since the last Step. Terminals deliver key presses
	// only (no release events), so the set of keys seen during a tick
	// interval is treated as the polled down-set for that tick: autorepeat
	// keeps held keys in the set, taps appear for a single tick.
	pending map[string]bool

	board  grids.Rect // interior cells the player can occupy
	player grids.Point
	facing grids.Direction4
	loot   []Loot

	tick      int
	score     int
	collected int
	flash     int // pickup flash ticks remaining

	paused   bool
	gameOver bool
}

// New creates a game from the given config and RNG seed.
func New(cfg config.Config, seed int64) (*Game, error) {
	if cfg.Board.Width < 5 || cfg.Board.Height < 5 {
		return nil, fmt.Errorf("demo: board %dx%d is too small", cfg.Board.Width, cfg.Board.Height)
	}

	bindings := make(map[string]Control, len(cfg.Bindings))
	for raw, name := range cfg.Bindings {
		ctrl, err := ParseControl(name)
		if err != nil {
			return nil, fmt.Errorf("demo: binding %q: %w", raw, err)
		}
		bindings[raw] = ctrl
	}

	entries := make([]chance.WeightedEntry[config.LootEntry], len(cfg.Loot.Table))
	for i, e := range cfg.Loot.Table {
		entries[i] = chance.WeightedEntry[config.LootEntry]{Item: e, Weight: e.Weight}
	}
	picker, err := chance.NewWeightedPicker(entries)
	if err != nil {
		return nil, fmt.Errorf("demo: loot table: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		seed:    seed,
		handler: input.NewHandler(bindings),
		picker:  picker,
		pending: make(map[string]bool),
	}
	g.Reset(seed)
	return g, nil
}

// Reset starts a fresh run with the given seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.board = grids.NewRect(1, 1, g.cfg.Board.Width-2, g.cfg.Board.Height-2)
	g.player = g.board.Center()
	g.facing = grids.East
	g.loot = nil
	g.tick = 0
	g.score = 0
	g.collected = 0
	g.flash = 0
	g.paused = false
	g.gameOver = false
}

// KeyDown records a raw key seen since the last Step.
func (g *Game) KeyDown(raw string) {
	g.pending[raw] = true
}

// Step advances the simulation by one tick, consuming the keys collected
// since the previous Step.
func (g *Game) Step() {
	g.handler.Poll(g.pending)
	clear(g.pending)

	if g.gameOver {
		if g.handler.ClickedDown(CtrlRestart) {
			// Reseed so a restarted run is a fresh one.
			g.Reset(g.seed + 1)
		}
		g.handler.EndFrame()
		return
	}

	if g.handler.ClickedDown(CtrlPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.handler.EndFrame()
		return
	}

	g.stepPlayer()

	g.tick++
	g.spawnLoot()
	g.collectLoot()
	if g.flash > 0 {
		g.flash--
	}

	if g.cfg.Run.DurationTicks > 0 && g.tick >= g.cfg.Run.DurationTicks {
		g.gameOver = true
	}

	g.handler.EndFrame()
}

// stepPlayer applies movement: one step on a fresh press, then one step
// every MoveRepeatTicks while the control stays held.
func (g *Game) stepPlayer() {
	repeat := g.cfg.Run.MoveRepeatTicks
	if repeat <= 0 {
		repeat = 1
	}

	for _, mc := range moveControls {
		var move bool
		switch {
		case g.handler.ClickedDown(mc.ctrl):
			move = true
		case g.handler.Pressed(mc.ctrl):
			held := g.handler.HeldTicks(mc.ctrl)
			move = held > 0 && held%repeat == 0
		}
		if !move {
			continue
		}

		g.facing = mc.dir
		if next := g.player.Step(mc.dir); g.board.ContainsPoint(next) {
			g.player = next
		}
		return
	}
}

// spawnLoot drops a new weighted-random pickup on a free cell at the
// configured cadence.
func (g *Game) spawnLoot() {
	if g.cfg.Loot.SpawnEveryTicks <= 0 || g.tick%g.cfg.Loot.SpawnEveryTicks != 0 {
		return
	}
	if g.cfg.Loot.MaxOnBoard > 0 && len(g.loot) >= g.cfg.Loot.MaxOnBoard {
		return
	}

	pos, ok := g.freeCell()
	if !ok {
		return
	}
	g.loot = append(g.loot, Loot{Pos: pos, Entry: g.picker.Pick(g.rng)})
}

// freeCell finds a random unoccupied interior cell. A bounded number of
// rejection-sampling attempts keeps it O(1) in practice; a board crowded
// enough to exhaust them simply skips the spawn.
func (g *Game) freeCell() (grids.Point, bool) {
	for attempt := 0; attempt < 32; attempt++ {
		p := grids.Pt(
			g.board.X+g.rng.Intn(g.board.W),
			g.board.Y+g.rng.Intn(g.board.H),
		)
		if p == g.player || g.hasLootAt(p) {
			continue
		}
		return p, true
	}
	return grids.Point{}, false
}

func (g *Game) hasLootAt(p grids.Point) bool {
	for _, l := range g.loot {
		if l.Pos == p {
			return true
		}
	}
	return false
}

// collectLoot picks up whatever the player is standing on.
func (g *Game) collectLoot() {
	for i, l := range g.loot {
		if l.Pos != g.player {
			continue
		}
		g.score += l.Entry.Points
		g.collected++
		g.flash = g.cfg.Run.FlashTicks
		g.loot = append(g.loot[:i], g.loot[i+1:]...)
		return
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Collected returns how many pickups have been collected this run.
func (g *Game) Collected() int {
	return g.collected
}

// GameOver reports whether the run has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Paused reports whether the run is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Handler exposes the control handler, for rebinding UIs.
func (g *Game) Handler() *input.Handler[string, Control] {
	return g.handler
}
