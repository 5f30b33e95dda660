package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/model"
)

// MaxSteps bounds the DDA walk so a ray always terminates.
const MaxSteps = 100

// CastRays casts count rays spread evenly across fov (radians) centred on the
// pose heading.
func CastRays(pose model.Pose, grid *model.Grid, fov float64, count int) Frame {
	if count <= 0 {
		return newFrame(0)
	}

	frame := newFrame(count)
	start := pose.Angle - fov/2
	step := fov / float64(count)
	for i := 0; i < count; i++ {
		angle := start + float64(i)*step
		if r, ok := CastRay(pose, grid, angle); ok {
			r.Column = i
			frame.add(r)
		}
	}
	return frame
}

// CastRay walks the grid from the pose along angle until a wall is struck.
// Distance and hit point are measured against the pose heading: the direction
// is stretched so its component along the heading is one, which makes the DDA
// side distance the perpendicular distance directly.
func CastRay(pose model.Pose, grid *model.Grid, angle float64) (Ray, bool) {
	cell := grid.CellSize()
	stretch := math.Cos(angle - pose.Angle)
	if stretch <= 0 {
		return Ray{}, false
	}

	dirX := math.Cos(angle) / stretch
	dirY := math.Sin(angle) / stretch

	// work in grid units
	posX := pose.Position.X / cell
	posY := pose.Position.Y / cell
	mapX, mapY := model.WorldToGrid(pose.Position.X, pose.Position.Y, cell)

	deltaDistX := inverseAbs(dirX)
	deltaDistY := inverseAbs(dirY)

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if dirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - posX) * deltaDistX
	}
	if dirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - posY) * deltaDistY
	}

	for i := 0; i < MaxSteps; i++ {
		var side Side
		if sideDistX <= sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = Vertical
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = Horizontal
		}

		c, ok := grid.At(mapX, mapY)
		if ok && !c.IsWall() {
			continue
		}
		if !ok {
			// only reachable when starting outside a bordered grid
			return Ray{}, false
		}

		var perpWallDist float64
		if side == Vertical {
			perpWallDist = sideDistX - deltaDistX
		} else {
			perpWallDist = sideDistY - deltaDistY
		}

		dist := perpWallDist * cell
		return Ray{
			Angle:    angle,
			Distance: dist,
			Hit: geom.Vector2{
				X: pose.Position.X + dirX*dist,
				Y: pose.Position.Y + dirY*dist,
			},
			Wall: c,
			Side: side,
		}, true
	}

	return Ray{}, false
}

func inverseAbs(v float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}
	return math.Abs(1 / v)
}
