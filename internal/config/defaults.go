package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols:     30,
			Rows:     20,
			CellSize: 20,
		},
		Timing: TimingConfig{
			TicksPerSecond: 10,
		},
		Start: StartConfig{
			X:       CenterCoord,
			Y:       CenterCoord,
			Heading: "down",
		},
		Food: FoodConfig{
			X: 1,
			Y: 1,
		},
		Colors: ColorConfig{
			Background: "green",
			Snake:      "red",
			Food:       "white",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
