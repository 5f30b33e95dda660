package model

import (
	"github.com/harbdog/raycaster-go/geom"
)

// -- collision

// SlideMove moves from a position by delta against the grid. The full move is
// tried first, then the X component alone, then the Y component alone, which
// lets movers slide along walls instead of sticking to them.
func SlideMove(grid *Grid, from, delta geom.Vector2) (geom.Vector2, bool) {
	full := geom.Vector2{X: from.X + delta.X, Y: from.Y + delta.Y}
	if grid.IsWalkable(full.X, full.Y) {
		return full, true
	}

	if delta.X != 0 && grid.IsWalkable(from.X+delta.X, from.Y) {
		return geom.Vector2{X: from.X + delta.X, Y: from.Y}, true
	}
	if delta.Y != 0 && grid.IsWalkable(from.X, from.Y+delta.Y) {
		return geom.Vector2{X: from.X, Y: from.Y + delta.Y}, true
	}

	return from, false
}
