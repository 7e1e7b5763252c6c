package snake

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Outcome is the result of moving the snake one tick.
type Outcome int

const (
	Alive Outcome = iota
	Dead
)

func (o Outcome) String() string {
	if o == Dead {
		return "dead"
	}
	return "alive"
}

// Snake owns the ordered body (front = head, back = tail) and the heading.
type Snake struct {
	body     deque.Deque[Cell]
	heading  Direction
	cellSize int
}

// NewSnake creates a single-segment snake at start.
func NewSnake(start Cell, heading Direction, cellSize int) *Snake {
	s := &Snake{heading: heading, cellSize: cellSize}
	s.body.PushFront(start)
	return s
}

// Update moves the snake one cell along its heading.
//
// A move off the grid reports Dead without touching the body. Otherwise the
// tail is dropped first unless growthPending, so the head may enter the cell
// the tail just vacated; a head landing on any remaining segment reports Dead.
func (s *Snake) Update(growthPending bool, grid Grid) Outcome {
	head := s.Head()
	if grid.AtEdge(head, s.heading) {
		return Dead
	}
	next := head.Step(s.heading)

	if !growthPending {
		s.body.PopBack()
	}

	if s.Occupies(next) {
		return Dead
	}

	s.body.PushFront(next)
	return Alive
}

// SetHeading changes the heading unless requested reverses it.
func (s *Snake) SetHeading(requested Direction) {
	if requested.IsOpposite(s.heading) {
		return
	}
	s.heading = requested
}

// Heading returns the current heading.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Occupies reports whether any body segment is at c.
func (s *Snake) Occupies(c Cell) bool {
	for i := range s.body.Len() {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}

// Head returns the front segment. It panics on an empty body, which the
// lifecycle never allows.
func (s *Snake) Head() Cell {
	if s.body.Len() == 0 {
		panic("snake: head of empty body")
	}
	return s.body.Front()
}

// Tail returns the back segment. It panics on an empty body.
func (s *Snake) Tail() Cell {
	if s.body.Len() == 0 {
		panic("snake: tail of empty body")
	}
	return s.body.Back()
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	cells := make([]Cell, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// Render maps every segment to its pixel square, head first.
func (s *Snake) Render() []core.Rect {
	squares := make([]core.Rect, s.body.Len())
	for i := range squares {
		squares[i] = s.body.At(i).Rect(s.cellSize)
	}
	return squares
}
