package demo

import "github.com/vovakirdan/gamekit/grids"

// LootSnapshot is one pickup in a state snapshot.
type LootSnapshot struct {
	Pos  grids.Point `yaml:"pos" json:"pos"`
	Name string      `yaml:"name" json:"name"`
}

// Snapshot is a copy of the observable game state, used for determinism
// checks and debugging.
type Snapshot struct {
	Tick      int              `yaml:"tick" json:"tick"`
	Score     int              `yaml:"score" json:"score"`
	Collected int              `yaml:"collected" json:"collected"`
	Player    grids.Point      `yaml:"player" json:"player"`
	Facing    grids.Direction4 `yaml:"facing" json:"facing"`
	Loot      []LootSnapshot   `yaml:"loot" json:"loot"`
	Paused    bool             `yaml:"paused" json:"paused"`
	GameOver  bool             `yaml:"game_over" json:"game_over"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Collected: g.collected,
		Player:    g.player,
		Facing:    g.facing,
		Paused:    g.paused,
		GameOver:  g.gameOver,
	}
	for _, l := range g.loot {
		snap.Loot = append(snap.Loot, LootSnapshot{Pos: l.Pos, Name: l.Entry.Name})
	}
	return snap
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int {
	return g.tick
}

// TimeLeft returns the ticks remaining before the run ends, or 0 for
// untimed runs.
func (g *Game) TimeLeft() int {
	if g.cfg.Run.DurationTicks <= 0 {
		return 0
	}
	return grids.Max(g.cfg.Run.DurationTicks-g.tick, 0)
}
