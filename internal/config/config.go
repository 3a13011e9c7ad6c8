// Package config provides YAML-based configuration for the gamekit demo:
// board layout, run tuning, the loot table, and key bindings.
package config

// Config contains all configuration for the gridhopper demo.
type Config struct {
	TickRate int               `yaml:"tick_rate"`
	Board    BoardConfig       `yaml:"board"`
	Run      RunConfig         `yaml:"run"`
	Loot     LootConfig        `yaml:"loot"`
	Bindings map[string]string `yaml:"bindings"` // raw key name -> control name
}

// BoardConfig defines the playing field dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RunConfig defines the pacing of a single run.
type RunConfig struct {
	DurationTicks   int `yaml:"duration_ticks"`    // run length in ticks
	MoveRepeatTicks int `yaml:"move_repeat_ticks"` // held-key step interval
	FlashTicks      int `yaml:"flash_ticks"`       // pickup flash duration
}

// LootConfig defines loot spawning and the weighted rarity table.
type LootConfig struct {
	SpawnEveryTicks int         `yaml:"spawn_every_ticks"`
	MaxOnBoard      int         `yaml:"max_on_board"`
	Table           []LootEntry `yaml:"table"`
}

// LootEntry is one row of the loot table.
type LootEntry struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	Points int     `yaml:"points"`
	Glyph  string  `yaml:"glyph"` // single rune drawn on the board
}
