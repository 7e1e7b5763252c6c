package snake

// Snapshot captures the complete game state for determinism testing and logging.
type Snapshot struct {
	Tick          uint64
	Score         int
	Length        int
	Head          Cell
	Heading       Direction
	Food          Cell
	GrowthPending bool
	State         State
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          c.tick,
		Score:         c.score,
		Length:        c.snake.Len(),
		Heading:       c.snake.Heading(),
		Food:          c.food.Cell(),
		GrowthPending: c.growthPending,
		State:         c.state,
	}
	if c.snake.Len() > 0 {
		snap.Head = c.snake.Head()
	}
	return snap
}
