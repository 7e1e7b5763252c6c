package snake

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestController(t *testing.T, s Settings) *Controller {
	t.Helper()
	c, err := NewController(s)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	return c
}

func TestNewControllerValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		want   error
	}{
		{"defaults", func(*Settings) {}, nil},
		{"one column", func(s *Settings) { s.Cols = 1 }, ErrGridTooSmall},
		{"zero rows", func(s *Settings) { s.Rows = 0 }, ErrGridTooSmall},
		{"negative cols", func(s *Settings) { s.Cols = -4 }, ErrGridTooSmall},
		{"zero cell size", func(s *Settings) { s.CellSize = 0 }, ErrBadCellSize},
		{"spawn past right edge", func(s *Settings) { s.Start = Cell{X: 30, Y: 0} }, ErrSpawnOutOfBounds},
		{"food past bottom edge", func(s *Settings) { s.Food = Cell{X: 0, Y: 20} }, ErrFoodOutOfBounds},
		{"food on spawn", func(s *Settings) { s.Food = s.Start }, ErrFoodOnSnake},
		{"2x2 centred spawn meets food", func(s *Settings) {
			s.Cols, s.Rows = 2, 2
			s.Start = Grid{Cols: 2, Rows: 2}.Center()
		}, ErrFoodOnSnake},
		{"2x2 valid", func(s *Settings) {
			s.Cols, s.Rows = 2, 2
			s.Start = Cell{X: 0, Y: 0}
		}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSettings()
			tc.modify(&s)
			c, err := NewController(s)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("NewController() error = %v, expected nil", err)
				}
				if c.State() != StateRunning {
					t.Errorf("New controller state = %v, expected running", c.State())
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("NewController() error = %v, expected %v", err, tc.want)
			}
			if c != nil {
				t.Error("NewController() should return nil controller on error")
			}
		})
	}
}

func TestEndToEndWallDeath(t *testing.T) {
	c := newTestController(t, DefaultSettings())

	for i := 1; i <= 9; i++ {
		res := c.OnTick()
		if res.State != StateRunning || res.Terminated {
			t.Fatalf("tick %d: unexpected termination", i)
		}
	}
	if head := c.snake.Head(); head != (Cell{X: 15, Y: 19}) {
		t.Fatalf("Head after 9 ticks = %+v, expected (15, 19)", head)
	}

	res := c.OnTick()
	if !res.Terminated || res.State != StateTerminated {
		t.Fatalf("10th tick should terminate, got %+v", res)
	}
	if res.Score != 0 {
		t.Errorf("Final score = %d, expected 0", res.Score)
	}

	// Terminal state: no transition out and the final score is reported once.
	res = c.OnTick()
	if res.Terminated || res.State != StateTerminated {
		t.Errorf("Tick after termination = %+v, expected terminal without report", res)
	}
}

func TestFoodConsumptionGrowsNextTick(t *testing.T) {
	s := DefaultSettings()
	s.Food = Cell{X: 15, Y: 11} // One cell below the head
	c := newTestController(t, s)

	c.OnTick()
	if !c.GrowthPending() {
		t.Fatal("GrowthPending should be true right after eating")
	}
	if c.Score() != 0 || c.snake.Len() != 1 {
		t.Fatalf("After eating: score %d len %d, expected 0 and 1", c.Score(), c.snake.Len())
	}
	if c.snake.Occupies(c.food.Cell()) {
		t.Fatalf("Food relocated onto snake at %+v", c.food.Cell())
	}

	// Keep the next move clear of food so growth is applied alone.
	c.food = NewFood(Cell{X: 0, Y: 0})

	c.OnTick()
	if c.Score() != 1 {
		t.Errorf("Score after growth tick = %d, expected 1", c.Score())
	}
	if c.snake.Len() != 2 {
		t.Errorf("Length after growth tick = %d, expected 2", c.snake.Len())
	}
	if c.GrowthPending() {
		t.Error("GrowthPending should clear once growth is applied")
	}
	if c.snake.Tail() != (Cell{X: 15, Y: 11}) {
		t.Errorf("Tail = %+v, expected (15, 11)", c.snake.Tail())
	}
}

func TestDeathWhileGrowthPendingKeepsScore(t *testing.T) {
	s := DefaultSettings()
	s.Start = Cell{X: 15, Y: 18}
	s.Food = Cell{X: 15, Y: 19}
	c := newTestController(t, s)

	c.OnTick() // Eat on the bottom row
	if !c.GrowthPending() {
		t.Fatal("GrowthPending should be set")
	}
	res := c.OnTick() // Into the wall
	if !res.Terminated {
		t.Fatal("Moving off the bottom row should terminate")
	}
	if res.Score != 0 {
		t.Errorf("Score = %d, expected 0 since growth was never applied", res.Score)
	}
}

func TestOnDirectionRejectsReversal(t *testing.T) {
	c := newTestController(t, DefaultSettings())

	c.OnDirection(DirUp)
	c.OnTick()
	if head := c.snake.Head(); head != (Cell{X: 15, Y: 11}) {
		t.Errorf("Reversal should be ignored, head = %+v, expected (15, 11)", head)
	}

	c.OnDirection(DirLeft)
	c.OnTick()
	if head := c.snake.Head(); head != (Cell{X: 14, Y: 11}) {
		t.Errorf("Turn left should apply, head = %+v, expected (14, 11)", head)
	}
}

func TestOnDirectionIgnoredWhenTerminated(t *testing.T) {
	s := DefaultSettings()
	s.Start = Cell{X: 15, Y: 19}
	c := newTestController(t, s)

	if res := c.OnTick(); !res.Terminated {
		t.Fatal("Expected immediate wall death")
	}
	c.OnDirection(DirLeft)
	if c.snake.Heading() != DirDown {
		t.Errorf("Heading changed after termination: %v", c.snake.Heading())
	}
}

func TestOnRenderOrder(t *testing.T) {
	c := newTestController(t, DefaultSettings())

	prims := c.OnRender()
	if len(prims) != 3 {
		t.Fatalf("OnRender() returned %d primitives, expected 3", len(prims))
	}

	bg := prims[0]
	if bg.Kind != PrimBackground || bg.Rect != core.NewRect(0, 0, 600, 400) || bg.Color != core.ColorGreen {
		t.Errorf("Background primitive = %+v", bg)
	}
	body := prims[1]
	if body.Kind != PrimSnake || body.Rect != core.Square(300, 200, 20) || body.Color != core.ColorRed {
		t.Errorf("Snake primitive = %+v", body)
	}
	food := prims[2]
	if food.Kind != PrimFood || food.Rect != core.Square(20, 20, 20) || food.Color != core.ColorWhite {
		t.Errorf("Food primitive = %+v", food)
	}
}

func TestOnRenderTerminated(t *testing.T) {
	s := DefaultSettings()
	s.Start = Cell{X: 15, Y: 19}
	c := newTestController(t, s)
	c.OnTick()

	if prims := c.OnRender(); prims != nil {
		t.Errorf("Terminated game should render nothing, got %d primitives", len(prims))
	}
}

// steerTowardFood turns the snake toward the food, x axis first.
func steerTowardFood(c *Controller) {
	head := c.snake.Head()
	food := c.food.Cell()
	switch {
	case food.X > head.X:
		c.OnDirection(DirRight)
	case food.X < head.X:
		c.OnDirection(DirLeft)
	case food.Y > head.Y:
		c.OnDirection(DirDown)
	default:
		c.OnDirection(DirUp)
	}
}

func TestGreedyPlayKeepsBodyConsistent(t *testing.T) {
	s := DefaultSettings()
	s.Seed = 2024
	c := newTestController(t, s)

	lastScore := 0
	for i := 0; i < 2000 && c.State() == StateRunning; i++ {
		steerTowardFood(c)
		res := c.OnTick()
		if res.Score < lastScore {
			t.Fatalf("tick %d: score decreased from %d to %d", i, lastScore, res.Score)
		}
		lastScore = res.Score
		if res.State != StateRunning {
			break
		}

		if c.snake.Len() != c.Score()+1 {
			t.Fatalf("tick %d: length %d, expected score+1 = %d", i, c.snake.Len(), c.Score()+1)
		}
		if c.snake.Occupies(c.food.Cell()) {
			t.Fatalf("tick %d: food at %+v is on the snake", i, c.food.Cell())
		}
		seen := make(map[Cell]bool, c.snake.Len())
		for _, seg := range c.snake.Body() {
			if seen[seg] {
				t.Fatalf("tick %d: duplicate segment %+v", i, seg)
			}
			if !c.grid.Contains(seg) {
				t.Fatalf("tick %d: segment %+v outside grid", i, seg)
			}
			seen[seg] = true
		}
	}

	if lastScore == 0 {
		t.Error("Greedy play should eat at least once")
	}
}

func TestDeterminism(t *testing.T) {
	s := DefaultSettings()
	s.Seed = 12345

	c1 := newTestController(t, s)
	c2 := newTestController(t, s)

	for i := 0; i < 300; i++ {
		steerTowardFood(c1)
		steerTowardFood(c2)
		c1.OnTick()
		c2.OnTick()

		if snap1, snap2 := c1.Snapshot(), c2.Snapshot(); snap1 != snap2 {
			t.Fatalf("tick %d: snapshots differ:\n%+v\n%+v", i, snap1, snap2)
		}
	}
}

func TestSnapshot(t *testing.T) {
	s := DefaultSettings()
	s.Food = Cell{X: 15, Y: 11}
	c := newTestController(t, s)
	c.OnTick()

	snap := c.Snapshot()
	if snap.Tick != 1 || snap.Score != 0 || snap.Length != 1 {
		t.Errorf("Snapshot counters = %+v", snap)
	}
	if snap.Head != (Cell{X: 15, Y: 11}) || snap.Heading != DirDown {
		t.Errorf("Snapshot head/heading = %+v/%v", snap.Head, snap.Heading)
	}
	if !snap.GrowthPending || snap.State != StateRunning {
		t.Errorf("Snapshot flags = %+v", snap)
	}
	if snap.Food == (Cell{X: 15, Y: 11}) {
		t.Error("Snapshot food should be the relocated cell")
	}
}

func TestDebugState(t *testing.T) {
	c := newTestController(t, DefaultSettings())
	out := c.DebugState()
	for _, want := range []string{"Tick: 0", "Score: 0", "Heading: down", "Head: (15, 10)"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}
