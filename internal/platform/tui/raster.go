package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// colsPerCell is how many terminal columns one grid cell spans. Terminal
// characters are about twice as tall as wide, so two columns look square.
const colsPerCell = 2

// Rasterizer maps pixel-space primitives onto terminal character cells.
type Rasterizer struct {
	CellSize int // Pixel side of one grid cell
	OffsetX  int // Terminal column of the grid's left edge
	OffsetY  int // Terminal row of the grid's top edge
}

// GridSize returns the terminal footprint of a grid.
func GridSize(g snake.Grid) (w, h int) {
	return int(g.Cols) * colsPerCell, int(g.Rows)
}

// charRect converts a pixel rectangle to terminal cells.
func (r Rasterizer) charRect(px core.Rect) core.Rect {
	cs := max(r.CellSize, 1)
	x0 := px.X * colsPerCell / cs
	x1 := px.Right() * colsPerCell / cs
	y0 := px.Y / cs
	y1 := px.Bottom() / cs
	return core.NewRect(r.OffsetX+x0, r.OffsetY+y0, x1-x0, y1-y0)
}

// Draw paints primitives onto dst in order. Background primitives set the
// cell background; snake and food primitives draw a colored block over it.
func (r Rasterizer) Draw(dst *core.Screen, prims []snake.Primitive) {
	for _, p := range prims {
		rect := r.charRect(p.Rect)
		if rect.Empty() {
			continue
		}
		if p.Kind == snake.PrimBackground {
			dst.FillRect(rect, core.Cell{Rune: ' ', BG: p.Color})
			continue
		}
		glyph := runeFor(p.Kind)
		for y := rect.Y; y < rect.Bottom(); y++ {
			for x := rect.X; x < rect.Right(); x++ {
				c := dst.GetCell(x, y)
				c.Rune = glyph
				c.FG = p.Color
				dst.SetCell(x, y, c)
			}
		}
	}
}

func runeFor(k snake.PrimitiveKind) rune {
	if k == snake.PrimFood {
		return '▓'
	}
	return '█'
}
