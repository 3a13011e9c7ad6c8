package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamekit/internal/demo"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the effective key bindings",
	Long: `Print the key bindings the demo will use, after loading the config.

Bindings live under the 'bindings' section of the config file, mapping a
raw key name to one of: up, down, left, right, pause, restart. Several
keys may map to the same control.

Examples:
  gamekit keys
  gamekit keys --config ./my-gamekit.yaml`,
	Args: cobra.NoArgs,
	Run:  runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	cfg, err := loadDemoConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Group keys by control for readable output.
	byControl := make(map[string][]string)
	for raw, name := range cfg.Bindings {
		if _, err := demo.ParseControl(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		byControl[name] = append(byControl[name], raw)
	}

	controls := make([]string, 0, len(byControl))
	for name := range byControl {
		controls = append(controls, name)
	}
	sort.Strings(controls)

	fmt.Println("Key Bindings")
	fmt.Println()
	for _, name := range controls {
		keys := byControl[name]
		sort.Strings(keys)
		fmt.Printf("  %-8s  ", name)
		for i, k := range keys {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(k)
		}
		fmt.Println()
	}
}
