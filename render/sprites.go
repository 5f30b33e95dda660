package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/raycast"
)

const (
	// DefaultPlane is the camera plane half-width, roughly a 66 degree view.
	DefaultPlane = 0.66
	// DefaultNearPlane rejects billboards at or closer than this depth.
	DefaultNearPlane = 0.5
	// DefaultDepthEpsilon is the slack a billboard gets against the wall depth.
	DefaultDepthEpsilon = 1.0
	// screenMargin keeps billboards whose centre is just off screen.
	screenMargin = 100.0
)

// Camera is the projection basis built from the player's pose.
type Camera struct {
	Pose      model.Pose
	Plane     float64
	CellSize  float64
	NearPlane float64
	Width     int
	Height    int
}

func NewCamera(pose model.Pose, cellSize float64, width, height int) Camera {
	return Camera{
		Pose:      pose,
		Plane:     DefaultPlane,
		CellSize:  cellSize,
		NearPlane: DefaultNearPlane,
		Width:     width,
		Height:    height,
	}
}

// Billboard is a point entity to draw facing the camera.
type Billboard struct {
	Position geom.Vector2
	Scale    float64
	Anchor   raycaster.SpriteAnchor
	Sheet    Sheet
	Texture  int
	// Flash tints the billboard red, used for damage feedback.
	Flash bool
}

// Projection is a billboard placed in screen space for one frame.
type Projection struct {
	ScreenX    float64
	TransformX float64
	Depth      float64
	Width      float64
	Height     float64
	Billboard  Billboard
}

// Project transforms a billboard into camera space using the inverse of the
// [plane; dir] matrix. It reports false for billboards behind or touching the
// camera and for those far off either screen edge.
func (c Camera) Project(b Billboard) (Projection, bool) {
	dir := c.Pose.Dir()
	plane := c.Pose.Plane(c.Plane)

	spriteX := b.Position.X - c.Pose.Position.X
	spriteY := b.Position.Y - c.Pose.Position.Y

	invDet := 1.0 / (plane.X*dir.Y - dir.X*plane.Y)
	transformX := invDet * (dir.Y*spriteX - dir.X*spriteY)
	transformY := invDet * (-plane.Y*spriteX + plane.X*spriteY)

	if transformY <= c.NearPlane {
		return Projection{}, false
	}

	w := float64(c.Width)
	screenX := w / 2 * (1 + transformX/transformY)
	if screenX < -screenMargin || screenX > w+screenMargin {
		return Projection{}, false
	}

	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	height := math.Abs(float64(c.Height)*c.CellSize/transformY) * scale

	return Projection{
		ScreenX:    screenX,
		TransformX: transformX,
		Depth:      transformY,
		Width:      height,
		Height:     height,
		Billboard:  b,
	}, true
}

// top returns the unclipped screen y of the projection's top edge.
func (c Camera) top(p Projection) float64 {
	half := float64(c.Height) / 2
	wallHalf := float64(c.Height) * c.CellSize / p.Depth / 2

	switch p.Billboard.Anchor {
	case raycaster.AnchorBottom:
		return half + wallHalf - p.Height
	case raycaster.AnchorTop:
		return half - wallHalf
	default:
		return half - p.Height/2
	}
}

// ProjectAll projects every billboard and orders the visible ones back to
// front.
func (c Camera) ProjectAll(items []Billboard) []Projection {
	projections := make([]Projection, 0, len(items))
	for _, b := range items {
		if p, ok := c.Project(b); ok {
			projections = append(projections, p)
		}
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].Depth > projections[j].Depth
	})
	return projections
}

// RenderSprites draws billboards farthest first. Each screen column is tested
// against the ray cast for it, so walls nearer than the billboard hide it.
func RenderSprites(fb engine.Framebuffer, cam Camera, items []Billboard, frame raycast.Frame, textures *TextureSet, depthEpsilon float64) {
	for _, p := range cam.ProjectAll(items) {
		renderProjection(fb, cam, p, frame, textures, depthEpsilon)
	}
}

func renderProjection(fb engine.Framebuffer, cam Camera, p Projection, frame raycast.Frame, textures *TextureSet, depthEpsilon float64) {
	tex, ok := textures.Sprite(p.Billboard.Sheet, p.Billboard.Texture)
	if !ok {
		return
	}

	left := p.ScreenX - p.Width/2
	top := cam.top(p)

	x0 := max(int(left), 0)
	x1 := min(int(left+p.Width), fb.Width())
	y0 := max(int(top), 0)
	y1 := min(int(top+p.Height), fb.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}

	texW, texH := tex.Width(), tex.Height()
	columns := frame.Columns()

	for x := x0; x < x1; x++ {
		if columns > 0 {
			col := min(max(x*columns/fb.Width(), 0), columns-1)
			if r, hit := frame.Column(col); hit && p.Depth >= r.Distance+depthEpsilon {
				continue
			}
		}

		texX := int((float64(x) - left) * float64(texW) / p.Width)
		if texX < 0 || texX >= texW {
			continue
		}

		for y := y0; y < y1; y++ {
			texY := int((float64(y) - top) * float64(texH) / p.Height)
			if texY < 0 || texY >= texH {
				continue
			}
			c := tex.At(texX, texY)
			if engine.IsTransparent(c) {
				continue
			}
			if p.Billboard.Flash {
				c = flash(c)
			}
			fb.Set(x, y, c)
		}
	}
}

func flash(c color.RGBA) color.RGBA {
	return color.RGBA{R: uint8((int(c.R) + 255) / 2), G: c.G / 2, B: c.B / 2, A: c.A}
}
