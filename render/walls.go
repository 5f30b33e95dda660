package render

import (
	"image/color"
	"math"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/raycast"
)

// MinWallDistance skips rays so close that the projected strip would explode.
const MinWallDistance = 0.1

var (
	CeilingColor = color.RGBA{60, 60, 60, 255}
	FloorColor   = color.RGBA{80, 80, 80, 255}
)

// RenderFloorCeiling paints the top half with the ceiling colour and the bottom
// half with the floor colour.
func RenderFloorCeiling(fb engine.Framebuffer, ceiling, floor color.RGBA) {
	half := fb.Height() / 2
	engine.DrawFilledRect(fb, 0, 0, fb.Width(), half, ceiling)
	engine.DrawFilledRect(fb, 0, half, fb.Width(), fb.Height()-half, floor)
}

// columnSpan returns the screen x range [x0, x1) covered by a ray column.
func columnSpan(col, columns, width int) (int, int) {
	return col * width / columns, (col + 1) * width / columns
}

// RenderWalls draws one textured vertical strip per ray. Columns without a ray
// are left untouched.
func RenderWalls(fb engine.Framebuffer, frame raycast.Frame, textures *TextureSet, cellSize float64) {
	columns := frame.Columns()
	if columns == 0 {
		return
	}
	screenH := float64(fb.Height())

	frame.Each(func(r raycast.Ray) {
		if r.Distance < MinWallDistance {
			return
		}

		x0, x1 := columnSpan(r.Column, columns, fb.Width())
		if x1 <= x0 {
			x1 = x0 + 1
		}

		wallHeight := screenH * cellSize / r.Distance
		wallTop := screenH/2 - wallHeight/2
		y0 := max(int(wallTop), 0)
		y1 := min(int(wallTop+wallHeight), fb.Height())

		tex := textures.Wall(r.Wall, r.Side)
		if tex == nil {
			c := WallColor(r.Wall, r.Side)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					fb.Set(x, y, c)
				}
			}
			return
		}

		texW, texH := tex.Width(), tex.Height()
		texX := int(wallOffset(r, cellSize) / cellSize * float64(texW))
		texX = min(max(texX, 0), texW-1)
		if r.Side == raycast.Vertical {
			texX = texW - 1 - texX
		}

		for y := y0; y < y1; y++ {
			texY := int((float64(y) - wallTop) * float64(texH) / wallHeight)
			c := tex.At(texX, texY)
			for x := x0; x < x1; x++ {
				fb.Set(x, y, c)
			}
		}
	})
}

// wallOffset is the position of the hit along the struck face: world Y for a
// vertical face, world X for a horizontal one.
func wallOffset(r raycast.Ray, cellSize float64) float64 {
	v := r.Hit.X
	if r.Side == raycast.Vertical {
		v = r.Hit.Y
	}
	off := math.Mod(v, cellSize)
	if off < 0 {
		off += cellSize
	}
	return off
}
