package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// PrimitiveKind identifies what a drawable primitive depicts.
type PrimitiveKind int

const (
	PrimBackground PrimitiveKind = iota
	PrimSnake
	PrimFood
)

func (k PrimitiveKind) String() string {
	switch k {
	case PrimBackground:
		return "background"
	case PrimSnake:
		return "snake"
	case PrimFood:
		return "food"
	default:
		return "unknown"
	}
}

// Primitive is a filled pixel-space rectangle the host rasterizes.
type Primitive struct {
	Kind  PrimitiveKind
	Rect  core.Rect
	Color core.Color
}

// Palette holds presentation colors. They do not affect game behavior.
type Palette struct {
	Background core.Color
	Snake      core.Color
	Food       core.Color
}

// DefaultPalette returns green background, red snake, white food.
func DefaultPalette() Palette {
	return Palette{
		Background: core.ColorGreen,
		Snake:      core.ColorRed,
		Food:       core.ColorWhite,
	}
}
