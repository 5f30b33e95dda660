package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/world"
)

// handleInput turns the keyboard and mouse state into commands for this tick
// and reports whether the trigger is held.
func (g *Game) handleInput() ([]model.Command, bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.world.Screen = world.MainMenu
		return nil, false
	}

	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)

		// reset initial mouse capture position
		g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
	}

	x, y := ebiten.CursorPosition()
	if g.mouseX == math.MinInt32 && g.mouseY == math.MinInt32 {
		// first position establishes the delta
		g.mouseX, g.mouseY = x, y
	} else {
		dx := x - g.mouseX
		g.mouseX, g.mouseY = x, y
		g.world.Player.Look(float64(dx), g.world.Config().Player.MouseSensitivity)
	}

	var cmds []model.Command
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		cmds = append(cmds, model.MoveForward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		cmds = append(cmds, model.MoveBackward)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		cmds = append(cmds, model.StrafeLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		cmds = append(cmds, model.StrafeRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		cmds = append(cmds, model.RotateLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		cmds = append(cmds, model.RotateRight)
	}

	trigger := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	return cmds, trigger
}
