package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is one grid position. Cells are values: moving derives a new Cell.
type Cell struct {
	X, Y uint32
}

// Step returns the neighbouring cell in direction d.
// The caller must check Grid.AtEdge first; stepping off row or column 0
// wraps the unsigned coordinate.
func (c Cell) Step(d Direction) Cell {
	switch d {
	case DirUp:
		c.Y--
	case DirDown:
		c.Y++
	case DirLeft:
		c.X--
	case DirRight:
		c.X++
	}
	return c
}

// Rect maps the cell to its pixel-space square.
func (c Cell) Rect(cellSize int) core.Rect {
	return core.Square(int(c.X)*cellSize, int(c.Y)*cellSize, cellSize)
}

// Grid is the playfield size in cells.
type Grid struct {
	Cols, Rows uint32
}

// Contains reports whether c lies within [0,Cols) x [0,Rows).
func (g Grid) Contains(c Cell) bool {
	return c.X < g.Cols && c.Y < g.Rows
}

// AtEdge reports whether moving from c in direction d would leave the grid.
func (g Grid) AtEdge(c Cell, d Direction) bool {
	switch d {
	case DirUp:
		return c.Y == 0
	case DirDown:
		return c.Y == g.Rows-1
	case DirLeft:
		return c.X == 0
	case DirRight:
		return c.X == g.Cols-1
	}
	return true
}

// Bounds returns the pixel rectangle covering the whole grid.
func (g Grid) Bounds(cellSize int) core.Rect {
	return core.NewRect(0, 0, int(g.Cols)*cellSize, int(g.Rows)*cellSize)
}

// Center returns the cell the snake spawns on by default.
func (g Grid) Center() Cell {
	return Cell{X: g.Cols / 2, Y: g.Rows / 2}
}
