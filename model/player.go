package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	PlayerMoveSpeed     = 7.0
	PlayerRotationSpeed = math.Pi / 33
	MouseSensitivity    = 0.003
)

// Command is a single player action for one tick.
type Command int

const (
	MoveForward Command = iota
	MoveBackward
	StrafeLeft
	StrafeRight
	RotateLeft
	RotateRight
)

func (c Command) String() string {
	switch c {
	case MoveForward:
		return "forward"
	case MoveBackward:
		return "backward"
	case StrafeLeft:
		return "strafe-left"
	case StrafeRight:
		return "strafe-right"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	}
	return "unknown"
}

type Player struct {
	Pose
	MoveSpeed     float64
	RotationSpeed float64
	MapColor      color.RGBA
	Moved         bool
	Weapon        *Weapon
}

func NewPlayer(x, y, angle float64) *Player {
	p := &Player{
		Pose: Pose{
			Position: geom.Vector2{X: x, Y: y},
			Angle:    angle,
		},
		MoveSpeed:     PlayerMoveSpeed,
		RotationSpeed: PlayerRotationSpeed,
		MapColor:      color.RGBA{255, 0, 0, 255},
		Weapon:        NewMachineGun(),
	}

	return p
}

// Apply runs one command against the grid. Movement slides along walls; it
// reports whether the pose changed.
func (p *Player) Apply(cmd Command, grid *Grid) bool {
	dir := p.Dir()
	var delta geom.Vector2

	switch cmd {
	case MoveForward:
		delta = geom.Vector2{X: dir.X * p.MoveSpeed, Y: dir.Y * p.MoveSpeed}
	case MoveBackward:
		delta = geom.Vector2{X: -dir.X * p.MoveSpeed, Y: -dir.Y * p.MoveSpeed}
	case StrafeLeft:
		delta = geom.Vector2{X: dir.Y * p.MoveSpeed, Y: -dir.X * p.MoveSpeed}
	case StrafeRight:
		delta = geom.Vector2{X: -dir.Y * p.MoveSpeed, Y: dir.X * p.MoveSpeed}
	case RotateLeft:
		p.Rotate(-p.RotationSpeed)
		return true
	case RotateRight:
		p.Rotate(p.RotationSpeed)
		return true
	default:
		return false
	}

	next, moved := SlideMove(grid, p.Position, delta)
	if moved {
		p.Position = next
		p.Moved = true
	}
	return moved
}

func (p *Player) Rotate(radians float64) {
	p.Angle += radians
	p.Moved = true
}

// Look turns the player by a horizontal mouse delta in pixels. A
// non-positive sensitivity falls back to MouseSensitivity.
func (p *Player) Look(dx, sensitivity float64) {
	if sensitivity <= 0 {
		sensitivity = MouseSensitivity
	}
	if dx != 0 {
		p.Rotate(dx * sensitivity)
	}
}
