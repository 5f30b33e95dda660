package fog

import (
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/raycast"
)

const cell = 64.0

func mustGrid(t *testing.T, rows ...string) *model.Grid {
	t.Helper()
	g, err := model.NewGrid(rows, cell)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func at(gx, gy int) model.Pose {
	return model.Pose{Position: model.GridToWorld(gx, gy, cell)}
}

func TestPlayerCellAlwaysRevealed(t *testing.T) {
	g := mustGrid(t,
		"111",
		"1 1",
		"111",
	)
	f := ForGrid(g, 0)
	f.Update(at(1, 1), raycast.Frame{}, g)

	if !f.IsExplored(1, 1) {
		t.Fatal("player cell not revealed")
	}
	if f.ExploredCount() != 1 {
		t.Fatalf("count = %d, want 1", f.ExploredCount())
	}
}

func TestWallBlocksLineOfSight(t *testing.T) {
	g := mustGrid(t,
		"1111111",
		"1  2  1",
		"1111111",
	)
	f := ForGrid(g, 10*cell)
	f.Update(at(1, 1), raycast.Frame{}, g)

	tests := []struct {
		gx, gy int
		want   bool
	}{
		{1, 1, true},
		{2, 1, true},
		{3, 1, true}, // the wall itself is seen
		{4, 1, false},
		{5, 1, false},
		{0, 1, true},
		{1, 0, true},
	}
	for _, tt := range tests {
		if got := f.IsExplored(tt.gx, tt.gy); got != tt.want {
			t.Errorf("IsExplored(%d,%d) = %v, want %v", tt.gx, tt.gy, got, tt.want)
		}
	}
}

func TestRadiusLimitsReveal(t *testing.T) {
	g := mustGrid(t,
		"111111111",
		"1       1",
		"111111111",
	)
	f := ForGrid(g, 2*cell)
	f.Update(at(1, 1), raycast.Frame{}, g)

	if !f.IsExplored(3, 1) {
		t.Error("cell two away should be revealed")
	}
	if f.IsExplored(4, 1) {
		t.Error("cell three away should stay hidden")
	}
}

func TestExploredIsMonotonic(t *testing.T) {
	g := mustGrid(t,
		"111111111",
		"1       1",
		"111111111",
	)
	f := ForGrid(g, 2*cell)
	f.Update(at(1, 1), raycast.Frame{}, g)
	before := f.Explored()

	f.Update(at(7, 1), raycast.Frame{}, g)
	for y, row := range before {
		for x, seen := range row {
			if seen && !f.IsExplored(x, y) {
				t.Errorf("cell (%d,%d) became unexplored", x, y)
			}
		}
	}
	if f.ExploredCount() <= countTrue(before) {
		t.Error("moving should reveal more cells")
	}
}

func TestRayHitsAreRevealed(t *testing.T) {
	rows := []string{
		"1111111111111",
		"1           1",
		"1111111111111",
	}
	g := mustGrid(t, rows...)
	f := ForGrid(g, 0)
	pose := at(1, 1)

	frame := raycast.CastRays(pose, g, 0.01, 1)
	if frame.Len() != 1 {
		t.Fatalf("expected one ray, got %d", frame.Len())
	}
	f.Update(pose, frame, g)

	if !f.IsExplored(12, 1) {
		t.Fatal("far wall struck by a ray should be revealed")
	}
}

func TestOutOfBoundsIsIgnored(t *testing.T) {
	f := New(3, 3, cell)
	f.MarkExplored(-1, 0)
	f.MarkExplored(3, 3)
	if f.ExploredCount() != 0 {
		t.Fatal("out-of-bounds mark changed the grid")
	}
	if f.IsExplored(-1, 0) || f.IsExplored(0, 5) {
		t.Fatal("out-of-bounds cells report explored")
	}
}

func TestExploredReturnsCopy(t *testing.T) {
	f := New(2, 2, cell)
	cp := f.Explored()
	cp[0][0] = true
	if f.IsExplored(0, 0) {
		t.Fatal("mutating the copy changed the fog")
	}
}

func TestReset(t *testing.T) {
	f := New(2, 2, cell)
	f.MarkExplored(1, 1)
	f.Reset()
	if f.ExploredCount() != 0 {
		t.Fatal("reset left explored cells")
	}
}

func TestLineOfSightOutsideGridBlocks(t *testing.T) {
	g := mustGrid(t,
		"111",
		"1 1",
		"111",
	)
	pose := model.Pose{Position: geom.Vector2{X: 1.5 * cell, Y: 1.5 * cell}}
	if !HasLineOfSight(g, pose, 2, 1) {
		t.Error("adjacent wall should be visible")
	}
	if HasLineOfSight(g, pose, 4, 1) {
		t.Error("target beyond the grid must be blocked")
	}
}

func countTrue(grid [][]bool) int {
	n := 0
	for _, row := range grid {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}
