package fog

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/raycast"
)

// FogOfWar remembers which grid cells the player has seen. Cells only ever go
// from unexplored to explored; Reset is the one way back.
type FogOfWar struct {
	explored     [][]bool
	width        int
	height       int
	VisionRadius float64
}

func New(width, height int, visionRadius float64) *FogOfWar {
	f := &FogOfWar{width: width, height: height, VisionRadius: visionRadius}
	f.Reset()
	return f
}

// ForGrid sizes a fog grid to match a maze.
func ForGrid(grid *model.Grid, visionRadius float64) *FogOfWar {
	return New(grid.Width(), grid.Height(), visionRadius)
}

func (f *FogOfWar) Width() int  { return f.width }
func (f *FogOfWar) Height() int { return f.height }

func (f *FogOfWar) IsExplored(gx, gy int) bool {
	if gx < 0 || gy < 0 || gx >= f.width || gy >= f.height {
		return false
	}
	return f.explored[gy][gx]
}

func (f *FogOfWar) MarkExplored(gx, gy int) {
	if gx < 0 || gy < 0 || gx >= f.width || gy >= f.height {
		return
	}
	f.explored[gy][gx] = true
}

// Reset clears every cell, used when a new game starts.
func (f *FogOfWar) Reset() {
	f.explored = make([][]bool, f.height)
	for y := range f.explored {
		f.explored[y] = make([]bool, f.width)
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "fog",
		"width":     f.width,
		"height":    f.height,
	}).Debug("fog reset")
}

// Explored returns a copy of the explored grid.
func (f *FogOfWar) Explored() [][]bool {
	out := make([][]bool, f.height)
	for y, row := range f.explored {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

func (f *FogOfWar) ExploredCount() int {
	n := 0
	for _, row := range f.explored {
		for _, e := range row {
			if e {
				n++
			}
		}
	}
	return n
}

// Update reveals what the player can see this frame: every cell within the
// vision radius with a clear line of sight, plus every cell a ray struck.
func (f *FogOfWar) Update(pose model.Pose, frame raycast.Frame, grid *model.Grid) {
	f.revealRadius(pose, grid)

	cell := grid.CellSize()
	frame.Each(func(r raycast.Ray) {
		f.MarkExplored(hitCell(r, cell))
	})
}

// hitCell returns the wall cell a ray struck. The hit point lies on the face
// between two cells, so it is nudged along the ray into the wall.
func hitCell(r raycast.Ray, cell float64) (int, int) {
	const nudge = 1e-6
	x := r.Hit.X + math.Cos(r.Angle)*nudge*cell
	y := r.Hit.Y + math.Sin(r.Angle)*nudge*cell
	return model.WorldToGrid(x, y, cell)
}

func (f *FogOfWar) revealRadius(pose model.Pose, grid *model.Grid) {
	cell := grid.CellSize()
	px, py := model.WorldToGrid(pose.Position.X, pose.Position.Y, cell)

	// the player's own cell is always visible
	f.MarkExplored(px, py)

	radiusCells := int(math.Ceil(f.VisionRadius / cell))
	for dy := -radiusCells; dy <= radiusCells; dy++ {
		for dx := -radiusCells; dx <= radiusCells; dx++ {
			gx, gy := px+dx, py+dy
			if !grid.InBounds(gx, gy) {
				continue
			}

			centre := model.GridToWorld(gx, gy, cell)
			if pose.DistanceTo(centre) > f.VisionRadius {
				continue
			}
			if HasLineOfSight(grid, pose, gx, gy) {
				f.MarkExplored(gx, gy)
			}
		}
	}
}

// HasLineOfSight samples the segment from the pose to the centre of a target
// cell every half cell. A wall sample blocks the view unless the wall is the
// target itself; samples outside the grid always block.
func HasLineOfSight(grid *model.Grid, pose model.Pose, tx, ty int) bool {
	cell := grid.CellSize()
	px, py := model.WorldToGrid(pose.Position.X, pose.Position.Y, cell)
	if px == tx && py == ty {
		return true
	}

	target := model.GridToWorld(tx, ty, cell)
	dx := target.X - pose.Position.X
	dy := target.Y - pose.Position.Y
	dist := math.Hypot(dx, dy)

	step := cell / 2
	steps := int(math.Ceil(dist / step))
	for i := 1; i <= steps; i++ {
		t := float64(i) * step / dist
		if t > 1 {
			t = 1
		}
		sx := pose.Position.X + dx*t
		sy := pose.Position.Y + dy*t

		gx, gy := model.WorldToGrid(sx, sy, cell)
		c, ok := grid.At(gx, gy)
		if !ok {
			return false
		}
		if c.IsWall() {
			return gx == tx && gy == ty
		}
	}
	return true
}
