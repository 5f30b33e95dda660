package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/render"
	"github.com/trvswgnr/gopher-maze/world"
)

// -- game

// Game adapts the world to ebiten's Update/Draw loop. The world renders into
// a software framebuffer which is uploaded to the GPU once per frame.
type Game struct {
	world    *world.World
	textures *render.TextureSet
	ui       *menus

	// window resolution and scaling
	screenWidth  int
	screenHeight int
	renderScale  float64

	fb    *engine.Image
	scene *ebiten.Image

	mouseX, mouseY int
	quit           bool

	log *logrus.Entry
}

func NewGame(e *env) (*Game, error) {
	cfg := e.cfg
	textures, err := render.LoadTextures(cfg.Assets.TextureDir, cfg.Assets.TextureSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:        e.world,
		textures:     textures,
		screenWidth:  cfg.Screen.Width,
		screenHeight: cfg.Screen.Height,
		renderScale:  cfg.Screen.Scale,
		mouseX:       math.MinInt32,
		mouseY:       math.MinInt32,
		log:          logger.For("game"),
	}

	w := max(int(float64(g.screenWidth)*g.renderScale), 1)
	h := max(int(float64(g.screenHeight)*g.renderScale), 1)
	g.fb = engine.NewImage(w, h)
	g.scene = ebiten.NewImage(w, h)
	g.ui = newMenus(g)

	ebiten.SetWindowTitle("Gopher Maze")
	ebiten.SetWindowSize(g.screenWidth, g.screenHeight)
	return g, nil
}

func runWindow(e *env) error {
	g, err := NewGame(e)
	if err != nil {
		return err
	}
	g.log.WithFields(logrus.Fields{
		"width":  g.screenWidth,
		"height": g.screenHeight,
		"scale":  g.renderScale,
	}).Info("starting window")

	err = ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Layout keeps a fixed logical screen size regardless of the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if g.world.Screen != world.Playing {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.mouseX, g.mouseY = math.MinInt32, math.MinInt32
		g.ui.Update()
		return nil
	}

	cmds, trigger := g.handleInput()
	g.world.Update(1/float64(ebiten.TPS()), cmds, trigger)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Render(g.fb, g.textures)
	g.scene.WritePixels(g.fb.Pix)

	op := &ebiten.DrawImageOptions{}
	if g.renderScale != 1.0 {
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(1/g.renderScale, 1/g.renderScale)
	}
	screen.DrawImage(g.scene, op)

	if g.world.Screen == world.Playing {
		g.drawHUD(screen)
		return
	}
	g.ui.Draw(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := g.world.State
	status := state.String()
	if w := g.world.Player.Weapon; w.IsFiring() {
		status += "  [" + w.Name + "]"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f  Explored: %d", ebiten.ActualFPS(), g.world.Fog.ExploredCount()), 10, 26)
	if msg := g.world.Message(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, g.screenWidth/2-len(msg)*3, g.screenHeight/2-40)
	}
	ebitenutil.DebugPrintAt(screen, "move with WASD, look with mouse or arrows, click or space to fire", 10, g.screenHeight-40)
	ebitenutil.DebugPrintAt(screen, "ESC for menu", 10, g.screenHeight-20)
}
