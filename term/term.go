// Package term plays the maze in a text terminal. The world is rendered
// into a framebuffer twice as tall as the text grid and printed with upper
// half blocks, two pixels per cell.
package term

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/render"
	"github.com/trvswgnr/gopher-maze/world"
)

const (
	Tick        = time.Second / 30
	TextureSize = 16
)

var hudStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

type Terminal struct {
	screen   tcell.Screen
	world    *world.World
	textures *render.TextureSet
	fb       *engine.Image

	cmds    []model.Command
	trigger bool
	restart func() error
}

func New(screen tcell.Screen, w *world.World, textures *render.TextureSet) *Terminal {
	return &Terminal{
		screen:   screen,
		world:    w,
		textures: textures,
		restart:  w.Restart,
	}
}

// Run takes over the screen and plays until the player quits. The screen is
// restored before Run returns.
func (t *Terminal) Run() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	defer t.screen.Fini()

	// log lines would tear the screen
	logger.Log.SetOutput(io.Discard)

	t.screen.HideCursor()
	t.screen.SetStyle(hudStyle)
	t.screen.Clear()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			quit, err := t.handle(ev)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case <-ticker.C:
			t.step()
		}
	}
}

func (t *Terminal) step() {
	t.world.Update(Tick.Seconds(), t.cmds, t.trigger)
	t.cmds = t.cmds[:0]
	t.trigger = false
	t.draw()
}

// handle queues the commands for the next tick. Terminals report presses,
// not held keys, so every key event is one step.
func (t *Terminal) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return true, nil
		case tcell.KeyEnter:
			switch t.world.Screen {
			case world.MainMenu:
				t.world.Start()
			case world.GameOver:
				if err := t.restart(); err != nil {
					return true, fmt.Errorf("restart: %w", err)
				}
			}
		case tcell.KeyUp:
			t.cmds = append(t.cmds, model.MoveForward)
		case tcell.KeyDown:
			t.cmds = append(t.cmds, model.MoveBackward)
		case tcell.KeyLeft:
			t.cmds = append(t.cmds, model.RotateLeft)
		case tcell.KeyRight:
			t.cmds = append(t.cmds, model.RotateRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true, nil
			case 'w':
				t.cmds = append(t.cmds, model.MoveForward)
			case 's':
				t.cmds = append(t.cmds, model.MoveBackward)
			case 'a':
				t.cmds = append(t.cmds, model.StrafeLeft)
			case 'd':
				t.cmds = append(t.cmds, model.StrafeRight)
			case ' ':
				t.trigger = true
			}
		}
	}
	return false, nil
}

func (t *Terminal) draw() {
	cols, rows := t.screen.Size()
	viewRows := rows - 1
	if cols <= 0 || viewRows <= 0 {
		return
	}
	if t.fb == nil || t.fb.Width() != cols || t.fb.Height() != viewRows*2 {
		t.fb = engine.NewImage(cols, viewRows*2)
	}

	t.world.Render(t.fb, t.textures)
	for y := 0; y < viewRows; y++ {
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(termColor(t.fb.At(x, y*2))).
				Background(termColor(t.fb.At(x, y*2+1)))
			t.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	t.drawText(0, viewRows, cols, t.statusLine())
	t.screen.Show()
}

func (t *Terminal) statusLine() string {
	switch t.world.Screen {
	case world.MainMenu:
		return "GOPHER MAZE - press enter to play, esc to quit"
	case world.GameOver:
		return "GAME OVER - " + t.world.State.String() + " - enter to play again"
	}
	if msg := t.world.Message(); msg != "" {
		return msg
	}
	if t.world.Player.Weapon.IsFiring() {
		return t.world.State.String() + " *"
	}
	return t.world.State.String()
}

func (t *Terminal) drawText(x, y, width int, text string) {
	col := 0
	for _, r := range text {
		if col >= width {
			break
		}
		t.screen.SetContent(x+col, y, r, nil, hudStyle)
		col++
	}
	for ; col < width; col++ {
		t.screen.SetContent(x+col, y, ' ', nil, hudStyle)
	}
}

func termColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
