package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go"
	"github.com/harbdog/raycaster-go/geom"
)

// Pose is a position in world units plus a heading in radians. The heading is
// never normalised; consumers only take its sine and cosine.
type Pose struct {
	Position geom.Vector2
	Angle    float64
}

func (p Pose) Dir() geom.Vector2 {
	return geom.Vector2{X: math.Cos(p.Angle), Y: math.Sin(p.Angle)}
}

// Plane returns the camera plane perpendicular to the heading, scaled by the
// given half-width of the view.
func (p Pose) Plane(scale float64) geom.Vector2 {
	d := p.Dir()
	return geom.Vector2{X: -d.Y * scale, Y: d.X * scale}
}

// DistanceTo returns the Euclidean distance between the pose and a point.
func (p Pose) DistanceTo(v geom.Vector2) float64 {
	return math.Hypot(v.X-p.Position.X, v.Y-p.Position.Y)
}

// AngleTo returns the heading from the pose position toward a point.
func (p Pose) AngleTo(v geom.Vector2) float64 {
	return math.Atan2(v.Y-p.Position.Y, v.X-p.Position.X)
}

// Entity is anything drawn as a billboard: decorations, pickups and enemies.
type Entity struct {
	Position geom.Vector2
	Scale    float64
	Anchor   raycaster.SpriteAnchor
	Texture  int
	Active   bool
	MapColor color.RGBA
}

// AngleDiff returns the absolute difference between two headings wrapped into
// [0, π].
func AngleDiff(a, b float64) float64 {
	diff := math.Mod(math.Abs(a-b), 2*math.Pi)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}
