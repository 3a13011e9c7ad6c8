// gamekit is the terminal demo for the gamekit game-dev primitives library.
//
// Usage:
//
//	gamekit play             - Play the gridhopper demo
//	gamekit scores           - Show the run history
//	gamekit keys             - Print the effective key bindings
//	gamekit serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Override tick rate
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.gamekit/runs.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamekit",
	Short: "gamekit - grid game primitives with a playable terminal demo",
	Long: `gamekit is a library of engine-agnostic game-dev primitives: input
tracking, grid math, easing, weighted random picking and value hashing.

This binary runs gridhopper, a small terminal game built entirely on the
library, so you can see every primitive in action.

Available commands:
  play     - Play the gridhopper demo
  scores   - View the run history
  keys     - Print the effective key bindings
  serve    - Start SSH server for remote play

Examples:
  gamekit play
  gamekit play --seed 42
  gamekit scores
  gamekit serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gamekit/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(serveCmd)
}
