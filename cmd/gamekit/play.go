package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamekit/internal/config"
	"github.com/vovakirdan/gamekit/internal/demo"
	"github.com/vovakirdan/gamekit/internal/platform/tui"
	"github.com/vovakirdan/gamekit/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the gridhopper demo",
	Long: `Start a gridhopper run.

Move around the board and collect loot before the timer runs out. Rarer
loot is worth more points.

Controls (default bindings, see 'gamekit keys'):
  WASD/HJKL/Arrows - Move
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  gamekit play
  gamekit play --seed 42
  gamekit play --fps 60
  gamekit play --config ./my-gamekit.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// loadDemoConfig loads the demo config and applies the --fps override.
func loadDemoConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadDemoConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := demo.New(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Terminal size, with sane fallbacks
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, seed, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
