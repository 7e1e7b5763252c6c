package snake

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, opposite Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := tc.d.Opposite(); got != tc.opposite {
				t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.opposite)
			}
			if !tc.d.IsOpposite(tc.opposite) {
				t.Errorf("%v.IsOpposite(%v) should be true", tc.d, tc.opposite)
			}
			if tc.d.IsOpposite(tc.d) {
				t.Errorf("%v.IsOpposite(%v) should be false", tc.d, tc.d)
			}
		})
	}
}

func TestDirectionDeltaMatchesStep(t *testing.T) {
	from := Cell{X: 5, Y: 5}
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		to := from.Step(d)
		if int(to.X)-int(from.X) != dx || int(to.Y)-int(from.Y) != dy {
			t.Errorf("%v: Delta() = (%d, %d), Step moved to %+v", d, dx, dy, to)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		ok   bool
	}{
		{"up", DirUp, true},
		{"DOWN", DirDown, true},
		{" left ", DirLeft, true},
		{"right", DirRight, true},
		{"sideways", DirUp, false},
		{"", DirUp, false},
	}

	for _, tc := range tests {
		got, ok := ParseDirection(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseDirection(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCellStep(t *testing.T) {
	c := Cell{X: 3, Y: 4}
	tests := []struct {
		d    Direction
		want Cell
	}{
		{DirUp, Cell{X: 3, Y: 3}},
		{DirDown, Cell{X: 3, Y: 5}},
		{DirLeft, Cell{X: 2, Y: 4}},
		{DirRight, Cell{X: 4, Y: 4}},
	}

	for _, tc := range tests {
		if got := c.Step(tc.d); got != tc.want {
			t.Errorf("Step(%v) = %+v, expected %+v", tc.d, got, tc.want)
		}
	}
	if c != (Cell{X: 3, Y: 4}) {
		t.Errorf("Step should not mutate the receiver, got %+v", c)
	}
}

func TestGridAtEdge(t *testing.T) {
	g := Grid{Cols: 5, Rows: 5}
	tests := []struct {
		name string
		c    Cell
		d    Direction
		want bool
	}{
		{"top row up", Cell{X: 2, Y: 0}, DirUp, true},
		{"top row left", Cell{X: 2, Y: 0}, DirLeft, false},
		{"left col left", Cell{X: 0, Y: 2}, DirLeft, true},
		{"bottom row down", Cell{X: 2, Y: 4}, DirDown, true},
		{"right col right", Cell{X: 4, Y: 2}, DirRight, true},
		{"right col up", Cell{X: 4, Y: 2}, DirUp, false},
		{"interior", Cell{X: 2, Y: 2}, DirDown, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.AtEdge(tc.c, tc.d); got != tc.want {
				t.Errorf("AtEdge(%+v, %v) = %v, expected %v", tc.c, tc.d, got, tc.want)
			}
		})
	}
}

func TestGridContainsAndGeometry(t *testing.T) {
	g := Grid{Cols: 30, Rows: 20}

	if !g.Contains(Cell{X: 29, Y: 19}) {
		t.Error("Contains should include the bottom-right cell")
	}
	if g.Contains(Cell{X: 30, Y: 0}) || g.Contains(Cell{X: 0, Y: 20}) {
		t.Error("Contains should exclude cells past the edge")
	}
	if c := g.Center(); c != (Cell{X: 15, Y: 10}) {
		t.Errorf("Center() = %+v, expected (15, 10)", c)
	}

	b := g.Bounds(20)
	if b.X != 0 || b.Y != 0 || b.W != 600 || b.H != 400 {
		t.Errorf("Bounds(20) = %+v, expected 600x400 at origin", b)
	}

	r := Cell{X: 2, Y: 3}.Rect(20)
	if r.X != 40 || r.Y != 60 || r.W != 20 || r.H != 20 {
		t.Errorf("Rect(20) = %+v, expected 20x20 at (40, 60)", r)
	}
}
