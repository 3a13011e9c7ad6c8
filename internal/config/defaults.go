package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// Default returns the default demo configuration.
func Default() Config {
	return Config{
		TickRate: 30,
		Board: BoardConfig{
			Width:  32,
			Height: 18,
		},
		Run: RunConfig{
			DurationTicks:   1800,
			MoveRepeatTicks: 4,
			FlashTicks:      12,
		},
		Loot: LootConfig{
			SpawnEveryTicks: 45,
			MaxOnBoard:      5,
			Table: []LootEntry{
				{Name: "coin", Weight: 10.0, Points: 1, Glyph: "o"},
				{Name: "gem", Weight: 4.0, Points: 5, Glyph: "*"},
				{Name: "relic", Weight: 1.0, Points: 20, Glyph: "&"},
				{Name: "crown", Weight: 0.2, Points: 100, Glyph: "@"},
			},
		},
		Bindings: map[string]string{
			"up": "up", "w": "up", "k": "up",
			"down": "down", "s": "down", "j": "down",
			"left": "left", "a": "left", "h": "left",
			"right": "right", "d": "right", "l": "right",
			"p": "pause",
			"r": "restart",
		},
	}
}
