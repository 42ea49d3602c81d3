// gb11 is a tiny tile-based puzzle: walk the room while it shrinks behind
// you, pick up arrows to grow it back, and take the key to the door.
//
// Usage:
//
//	gb11 play                - Play in the terminal
//	gb11 window              - Play in a desktop window
//	gb11 levels              - List the level table
//	gb11 atlas               - Check or export the tile atlas
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom game config YAML
//	--levels <path>      - Custom level table YAML
//	--atlas <path>       - Custom tile sheet YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log destination (default: ~/.gb11/gb11.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLevels   string
	flagAtlas    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gb11",
	Short: "GB11 - a shrinking-room puzzle in 160x144 pixels",
	Long: `GB11 is a small tile puzzle drawn on a four-shade handheld screen.

Every step shrinks the room behind you by one tile. Arrows grow it back.
Take the key, then reach the door.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - List or check the level table
  atlas    - Check or export the tile atlas

Examples:
  gb11 play
  gb11 play --select
  gb11 window --scale 3
  gb11 levels --check --levels ./my-levels.yaml
  gb11 atlas --png atlas.png`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to custom level table YAML")
	rootCmd.PersistentFlags().StringVar(&flagAtlas, "atlas", "", "Path to custom tile sheet YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.gb11/gb11.log", "Log file for the terminal driver")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(atlasCmd)
}
