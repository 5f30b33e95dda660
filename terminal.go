package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/trvswgnr/gopher-maze/render"
	"github.com/trvswgnr/gopher-maze/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play in the terminal using half-block characters, two pixels per cell.

Keys:
  w/s or up/down     move
  a/d                strafe
  left/right         turn
  space              fire
  enter              start or restart
  esc or q           quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		defer e.Close()
		return runTerminal(e)
	},
}

func runTerminal(e *env) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	textures, err := render.LoadTextures(e.cfg.Assets.TextureDir, term.TextureSize)
	if err != nil {
		return err
	}
	return term.New(screen, e.world, textures).Run()
}
