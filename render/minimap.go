package render

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/colornames"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/model"
)

var (
	MinimapOpen       = color.RGBA{220, 220, 220, 255}
	MinimapWall       = color.RGBA{100, 50, 150, 255}
	MinimapUnexplored = color.RGBA{20, 20, 20, 255}
	MinimapExit       = colornames.Gold
	MinimapPlayer     = color.RGBA{255, 0, 0, 255}
	MinimapEnemy      = color.RGBA{0, 255, 0, 255}
)

// Explorer answers whether a grid cell has been seen.
type Explorer interface {
	IsExplored(gx, gy int) bool
}

// Minimap draws the explored grid in a corner of the screen.
type Minimap struct {
	Scale   int
	OffsetX int
	OffsetY int
}

// TileColor returns the minimap colour of a cell.
func TileColor(c model.Cell, explored bool) color.RGBA {
	switch {
	case !explored:
		return MinimapUnexplored
	case c == model.Exit:
		return MinimapExit
	case c.IsWall():
		return MinimapWall
	default:
		return MinimapOpen
	}
}

func (m Minimap) Render(fb engine.Framebuffer, grid *model.Grid, fog Explorer, player model.Pose, enemies []geom.Vector2) {
	s := m.Scale
	for gy := 0; gy < grid.Height(); gy++ {
		for gx := 0; gx < grid.Width(); gx++ {
			c, _ := grid.At(gx, gy)
			tile := TileColor(c, fog.IsExplored(gx, gy))
			engine.DrawFilledRect(fb, m.OffsetX+gx*s, m.OffsetY+gy*s, s, s, tile)
		}
	}

	toScreen := func(v geom.Vector2) (float64, float64) {
		return float64(m.OffsetX) + v.X/grid.CellSize()*float64(s),
			float64(m.OffsetY) + v.Y/grid.CellSize()*float64(s)
	}

	for _, e := range enemies {
		gx, gy := model.WorldToGrid(e.X, e.Y, grid.CellSize())
		if !fog.IsExplored(gx, gy) {
			continue
		}
		ex, ey := toScreen(e)
		engine.DrawFilledCircle(fb, ex, ey, float64(s)/2, MinimapEnemy)
	}

	px, py := toScreen(player.Position)
	dir := player.Dir()
	engine.StrokeLine(fb, px, py, px+dir.X*float64(s)*1.5, py+dir.Y*float64(s)*1.5, 1, MinimapPlayer)
	engine.DrawFilledCircle(fb, px, py, float64(s)/2, MinimapPlayer)
}
