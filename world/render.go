package world

import (
	"image/color"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/render"
)

var crosshairColor = color.RGBA{255, 255, 255, 255}

// Render draws the current frame: floor and ceiling, walls, billboards, the
// weapon overlay and, when enabled, the minimap.
func (w *World) Render(fb engine.Framebuffer, textures *render.TextureSet) {
	grid := w.Level.Grid
	cell := grid.CellSize()

	render.RenderFloorCeiling(fb, render.CeilingColor, render.FloorColor)
	render.RenderWalls(fb, w.frame, textures, cell)

	cam := render.NewCamera(w.Player.Pose, cell, fb.Width(), fb.Height())
	cam.NearPlane = w.cfg.World.NearPlane
	render.RenderSprites(fb, cam, w.billboards(), w.frame, textures, w.cfg.World.DepthEpsilon)

	w.renderWeapon(fb, textures)
	w.renderCrosshair(fb)

	if w.cfg.Screen.Minimap {
		w.minimap(fb).Render(fb, grid, w.Fog, w.Player.Pose, w.VisibleEnemies())
	}
}

// billboards collects every drawable entity. Dead enemies stay as corpses.
func (w *World) billboards() []render.Billboard {
	items := make([]render.Billboard, 0, len(w.Sprites)+len(w.Enemies))
	for _, s := range w.Sprites {
		if !s.Active {
			continue
		}
		items = append(items, render.Billboard{
			Position: s.Position,
			Scale:    s.Scale,
			Anchor:   s.Anchor,
			Sheet:    render.SheetSprites,
			Texture:  s.Texture,
		})
	}
	for _, e := range w.Enemies {
		items = append(items, render.Billboard{
			Position: e.Position,
			Scale:    e.Scale,
			Anchor:   e.Anchor,
			Sheet:    render.SheetEnemy,
			Texture:  e.TextureFrame(),
			Flash:    e.Flashing(),
		})
	}
	return items
}

func (w *World) minimap(fb engine.Framebuffer) render.Minimap {
	grid := w.Level.Grid
	scale := max(2, fb.Height()/(4*grid.Height()))
	return render.Minimap{
		Scale:   scale,
		OffsetX: fb.Width() - grid.Width()*scale - 10,
		OffsetY: 10,
	}
}

// renderWeapon draws the held weapon at the bottom centre of the screen.
func (w *World) renderWeapon(fb engine.Framebuffer, textures *render.TextureSet) {
	tex, ok := textures.WeaponFrame(w.Player.Weapon.TextureFrame())
	if !ok {
		return
	}

	scale := float64(fb.Height()) / 3 / float64(tex.Height())
	op := engine.NewDrawImageOptions()
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		float64(fb.Width())/2-float64(tex.Width())*scale/2,
		float64(fb.Height())-float64(tex.Height())*scale,
	)
	engine.DrawImage(fb, tex.Image(), op)
}

func (w *World) renderCrosshair(fb engine.Framebuffer) {
	cx, cy := float64(fb.Width())/2, float64(fb.Height())/2
	size := float64(max(fb.Height()/60, 2))
	engine.StrokeLine(fb, cx-size, cy, cx+size, cy, 2, crosshairColor)
	engine.StrokeLine(fb, cx, cy-size, cx, cy+size, 2, crosshairColor)
}
