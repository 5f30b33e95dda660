package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/trvswgnr/gopher-maze/world"
)

var (
	menuBackground = color.NRGBA{0x13, 0x1a, 0x22, 0xe0}
	buttonIdle     = color.NRGBA{0x44, 0x44, 0x55, 0xff}
	buttonHover    = color.NRGBA{0x66, 0x66, 0x88, 0xff}
	buttonPressed  = color.NRGBA{0x22, 0x22, 0x33, 0xff}
)

// menus holds one ebitenui tree per non-playing screen.
type menus struct {
	game     *Game
	mainMenu *ebitenui.UI
	gameOver *ebitenui.UI
	summary  *widget.Text
}

func newMenus(g *Game) *menus {
	m := &menus{game: g}
	face := font.Face(basicfont.Face7x13)

	m.mainMenu = &ebitenui.UI{Container: menuScreen(face, "GOPHER MAZE",
		newButton(face, "Play", func() { g.world.Start() }),
		newButton(face, "New game", func() { m.restart() }),
		newButton(face, "Quit", func() { g.quit = true }),
	)}

	m.summary = widget.NewText(widget.TextOpts.Text("", face, colornames.White))
	m.gameOver = &ebitenui.UI{Container: menuScreen(face, "GAME OVER",
		m.summary,
		newButton(face, "Play again", func() { m.restart() }),
		newButton(face, "Quit", func() { g.quit = true }),
	)}
	return m
}

func (m *menus) restart() {
	if err := m.game.world.Restart(); err != nil {
		m.game.log.WithError(err).Error("restart")
		m.game.quit = true
	}
}

func (m *menus) current() *ebitenui.UI {
	if m.game.world.Screen == world.GameOver {
		s := m.game.world.State
		m.summary.Label = fmt.Sprintf("Score %d  Kills %d  Treasure %d", s.Score, s.Kills, s.Treasure)
		return m.gameOver
	}
	return m.mainMenu
}

func (m *menus) Update() {
	m.current().Update()
}

func (m *menus) Draw(screen *ebiten.Image) {
	m.current().Draw(screen)
}

func menuScreen(face font.Face, title string, children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(menuBackground)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	column.AddChild(widget.NewText(widget.TextOpts.Text(title, face, colornames.Gold)))
	for _, c := range children {
		column.AddChild(c)
	}

	root.AddChild(column)
	return root
}

func newButton(face font.Face, label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Stretch: true,
		})),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    uiimage.NewNineSliceColor(buttonIdle),
			Hover:   uiimage.NewNineSliceColor(buttonHover),
			Pressed: uiimage.NewNineSliceColor(buttonPressed),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle: colornames.White,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{Left: 30, Right: 30, Top: 6, Bottom: 6}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}
