package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food is the single food item. It is never removed, only relocated.
type Food struct {
	cell Cell
}

// NewFood places food at c.
func NewFood(c Cell) Food {
	return Food{cell: c}
}

// Cell returns the food position.
func (f Food) Cell() Cell {
	return f.cell
}

// Update reports whether the snake's head is on the food.
func (f Food) Update(s *Snake) bool {
	return s.Head() == f.cell
}

// Relocate draws uniformly random cells until one is free of the snake.
// The loop has no bound: it only terminates if the snake leaves a cell free,
// which holds for any grid large relative to play length.
func (f *Food) Relocate(grid Grid, s *Snake, rng *rand.Rand) {
	for {
		c := Cell{
			X: uint32(rng.Intn(int(grid.Cols))),
			Y: uint32(rng.Intn(int(grid.Rows))),
		}
		if !s.Occupies(c) {
			f.cell = c
			return
		}
	}
}

// Render maps the food to its pixel square.
func (f Food) Render(cellSize int) core.Rect {
	return f.cell.Rect(cellSize)
}
