// Package config provides YAML-based game configuration loading and
// validation for the snake game.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Validation errors returned by SnakeConfig.Validate.
var (
	ErrInvalidTickRate = errors.New("ticks_per_second must be positive")
	ErrUnknownColor    = errors.New("unknown color")
	ErrUnknownHeading  = errors.New("unknown heading")
	ErrBadCoordinate   = errors.New("coordinate out of range")
)

// CenterCoord in start.x or start.y places the snake at the grid centre on that axis.
const CenterCoord = -1

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
	Food   FoodConfig   `yaml:"food"`
	Colors ColorConfig  `yaml:"colors"`
	Seed   int64        `yaml:"seed"` // 0 = time-based
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"` // Pixel side of one cell
}

// TimingConfig defines the update rate.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// StartConfig defines the snake spawn.
type StartConfig struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	Heading string `yaml:"heading"`
}

// FoodConfig defines where the first food appears.
type FoodConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ColorConfig names the presentation colors.
type ColorConfig struct {
	Background string `yaml:"background"`
	Snake      string `yaml:"snake"`
	Food       string `yaml:"food"`
}

// Validate checks the fields that are not grid geometry. Grid size and
// placement are validated by snake.NewController.
func (c SnakeConfig) Validate() error {
	if c.Timing.TicksPerSecond <= 0 {
		return fmt.Errorf("config: %d: %w", c.Timing.TicksPerSecond, ErrInvalidTickRate)
	}
	if _, ok := snake.ParseDirection(c.Start.Heading); !ok {
		return fmt.Errorf("config: start.heading %q: %w", c.Start.Heading, ErrUnknownHeading)
	}
	if c.Start.X < CenterCoord || c.Start.Y < CenterCoord {
		return fmt.Errorf("config: start (%d, %d): %w", c.Start.X, c.Start.Y, ErrBadCoordinate)
	}
	if c.Food.X < 0 || c.Food.Y < 0 {
		return fmt.Errorf("config: food (%d, %d): %w", c.Food.X, c.Food.Y, ErrBadCoordinate)
	}
	if _, err := c.palette(); err != nil {
		return err
	}
	return nil
}

func (c SnakeConfig) palette() (snake.Palette, error) {
	var p snake.Palette
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"colors.background", c.Colors.Background, &p.Background},
		{"colors.snake", c.Colors.Snake, &p.Snake},
		{"colors.food", c.Colors.Food, &p.Food},
	}
	for _, f := range fields {
		color, ok := core.ParseColor(f.name)
		if !ok {
			return p, fmt.Errorf("config: %s %q: %w", f.key, f.name, ErrUnknownColor)
		}
		*f.dst = color
	}
	return p, nil
}

// Settings validates the config and converts it to game settings.
func (c SnakeConfig) Settings() (snake.Settings, error) {
	if err := c.Validate(); err != nil {
		return snake.Settings{}, err
	}

	heading, _ := snake.ParseDirection(c.Start.Heading)
	palette, _ := c.palette()

	startX, startY := c.Start.X, c.Start.Y
	if startX == CenterCoord {
		startX = max(c.Grid.Cols, 0) / 2
	}
	if startY == CenterCoord {
		startY = max(c.Grid.Rows, 0) / 2
	}

	return snake.Settings{
		Cols:     c.Grid.Cols,
		Rows:     c.Grid.Rows,
		CellSize: c.Grid.CellSize,
		Start:    snake.Cell{X: uint32(startX), Y: uint32(startY)},
		Heading:  heading,
		Food:     snake.Cell{X: uint32(c.Food.X), Y: uint32(c.Food.Y)},
		Seed:     c.Seed,
		Palette:  palette,
	}, nil
}

// YAML returns the config encoded as YAML.
func (c SnakeConfig) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Overrides holds command-line values that replace config fields.
// Zero fields leave the config untouched.
type Overrides struct {
	Cols           int
	Rows           int
	CellSize       int
	TicksPerSecond int
	Seed           int64
}

// Apply writes the non-zero overrides into cfg.
func (o Overrides) Apply(cfg *SnakeConfig) {
	if o.Cols != 0 {
		cfg.Grid.Cols = o.Cols
	}
	if o.Rows != 0 {
		cfg.Grid.Rows = o.Rows
	}
	if o.CellSize != 0 {
		cfg.Grid.CellSize = o.CellSize
	}
	if o.TicksPerSecond != 0 {
		cfg.Timing.TicksPerSecond = o.TicksPerSecond
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
}
