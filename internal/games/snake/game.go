// Package snake implements the snake game state machine: body movement,
// growth, collision detection and food placement, advanced one tick at a
// time by an external driver.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Construction errors returned by NewController.
var (
	ErrGridTooSmall     = errors.New("grid must be at least 2x2")
	ErrBadCellSize      = errors.New("cell size must be positive")
	ErrSpawnOutOfBounds = errors.New("spawn cell outside grid")
	ErrFoodOutOfBounds  = errors.New("food cell outside grid")
	ErrFoodOnSnake      = errors.New("food cell on snake")
)

// State is the controller's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Settings configures a new game.
type Settings struct {
	Cols     int
	Rows     int
	CellSize int // Pixel side of one cell
	Start    Cell
	Heading  Direction
	Food     Cell
	Seed     int64 // Seed for food relocation
	Palette  Palette
}

// DefaultSettings returns a 30x20 grid with the snake centred heading down
// and food at (1, 1).
func DefaultSettings() Settings {
	grid := Grid{Cols: 30, Rows: 20}
	return Settings{
		Cols:     int(grid.Cols),
		Rows:     int(grid.Rows),
		CellSize: 20,
		Start:    grid.Center(),
		Heading:  DirDown,
		Food:     Cell{X: 1, Y: 1},
		Palette:  DefaultPalette(),
	}
}

// TickResult is returned by OnTick.
type TickResult struct {
	State State
	Score int
	// Terminated is true only on the tick that ended the game.
	Terminated bool
}

// Controller owns the snake, the food and the score, and runs the per-tick
// update protocol. It is not safe for concurrent use; one driver delivers
// every event.
type Controller struct {
	grid          Grid
	cellSize      int
	palette       Palette
	rng           *rand.Rand
	snake         *Snake
	food          Food
	growthPending bool
	score         int
	tick          uint64
	state         State
}

// NewController validates settings and builds a running game.
func NewController(s Settings) (*Controller, error) {
	if s.Cols < 2 || s.Rows < 2 {
		return nil, fmt.Errorf("snake: %dx%d: %w", s.Cols, s.Rows, ErrGridTooSmall)
	}
	if s.CellSize < 1 {
		return nil, fmt.Errorf("snake: cell size %d: %w", s.CellSize, ErrBadCellSize)
	}

	grid := Grid{Cols: uint32(s.Cols), Rows: uint32(s.Rows)}
	if !grid.Contains(s.Start) {
		return nil, fmt.Errorf("snake: start (%d, %d): %w", s.Start.X, s.Start.Y, ErrSpawnOutOfBounds)
	}
	if !grid.Contains(s.Food) {
		return nil, fmt.Errorf("snake: food (%d, %d): %w", s.Food.X, s.Food.Y, ErrFoodOutOfBounds)
	}
	if s.Food == s.Start {
		return nil, fmt.Errorf("snake: food (%d, %d): %w", s.Food.X, s.Food.Y, ErrFoodOnSnake)
	}

	return &Controller{
		grid:     grid,
		cellSize: s.CellSize,
		palette:  s.Palette,
		rng:      rand.New(rand.NewSource(s.Seed)),
		snake:    NewSnake(s.Start, s.Heading, s.CellSize),
		food:     NewFood(s.Food),
		state:    StateRunning,
	}, nil
}

// OnTick advances the game by exactly one movement.
func (c *Controller) OnTick() TickResult {
	if c.state == StateTerminated {
		return c.result(false)
	}
	c.tick++

	if c.snake.Update(c.growthPending, c.grid) == Dead {
		c.state = StateTerminated
		return c.result(true)
	}

	if c.growthPending {
		c.score++
		c.growthPending = false
	}

	if c.food.Update(c.snake) {
		c.growthPending = true
		c.food.Relocate(c.grid, c.snake, c.rng)
	}

	return c.result(false)
}

func (c *Controller) result(terminated bool) TickResult {
	return TickResult{State: c.state, Score: c.score, Terminated: terminated}
}

// OnDirection forwards a turn request to the snake while running.
func (c *Controller) OnDirection(d Direction) {
	if c.state == StateTerminated {
		return
	}
	c.snake.SetHeading(d)
}

// OnRender returns the background, the snake squares (head first) and the
// food, in that order. A terminated game draws nothing.
func (c *Controller) OnRender() []Primitive {
	if c.state == StateTerminated {
		return nil
	}

	squares := c.snake.Render()
	prims := make([]Primitive, 0, len(squares)+2)
	prims = append(prims, Primitive{
		Kind:  PrimBackground,
		Rect:  c.grid.Bounds(c.cellSize),
		Color: c.palette.Background,
	})
	for _, sq := range squares {
		prims = append(prims, Primitive{Kind: PrimSnake, Rect: sq, Color: c.palette.Snake})
	}
	prims = append(prims, Primitive{
		Kind:  PrimFood,
		Rect:  c.food.Render(c.cellSize),
		Color: c.palette.Food,
	})
	return prims
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the number of food items eaten and grown into.
func (c *Controller) Score() int {
	return c.score
}

// GrowthPending reports whether the next move keeps the tail.
func (c *Controller) GrowthPending() bool {
	return c.growthPending
}

// Grid returns the playfield size.
func (c *Controller) Grid() Grid {
	return c.grid
}

// CellSize returns the pixel side of one cell.
func (c *Controller) CellSize() int {
	return c.cellSize
}

// Palette returns the presentation colors.
func (c *Controller) Palette() Palette {
	return c.palette
}

// DebugState returns a string representation of the game state.
func (c *Controller) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, State: %s\n", c.tick, c.score, c.state)
	fmt.Fprintf(&b, "Snake len: %d, Heading: %s, Growing: %v\n", c.snake.Len(), c.snake.Heading(), c.growthPending)
	if c.snake.Len() > 0 {
		head := c.snake.Head()
		food := c.food.Cell()
		fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, food.X, food.Y)
	}
	return b.String()
}
