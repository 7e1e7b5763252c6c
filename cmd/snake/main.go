// snake is the classic snake arcade game for the terminal.
//
// Usage:
//
//	snake play          - Play a game in this terminal
//	snake serve         - Start SSH server for remote play
//	snake config        - Print the effective configuration
//	snake version       - Print the version
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search ~/.snake, ./configs)
//	--cols, --rows    - Grid size in cells
//	--cell-size <px>  - Pixel side of one cell
//	--tps <rate>      - Ticks per second
//	--seed <value>    - RNG seed for reproducible food placement
//	--debug           - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagConfig   string
	flagDebug    bool
	flagOverride config.Overrides
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the arcade classic in your terminal",
	Long: `Snake moves on a grid, grows by eating food, and dies when it hits a
wall or itself.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  version  - Print the version

Examples:
  snake play
  snake play --cols 40 --rows 25 --tps 15
  snake serve --ssh :2222
  snake config > configs/snake.yaml`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to game config YAML")
	pf.IntVar(&flagOverride.Cols, "cols", 0, "Grid columns (0 = from config)")
	pf.IntVar(&flagOverride.Rows, "rows", 0, "Grid rows (0 = from config)")
	pf.IntVar(&flagOverride.CellSize, "cell-size", 0, "Pixel side of one cell (0 = from config)")
	pf.IntVar(&flagOverride.TicksPerSecond, "tps", 0, "Ticks per second (0 = from config)")
	pf.Int64Var(&flagOverride.Seed, "seed", 0, "RNG seed (0 = from config, then time-based)")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	flagOverride.Apply(&cfg)
	return cfg, nil
}

// newLogger creates the structured logger used by every command.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
