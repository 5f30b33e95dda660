package render

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/trvswgnr/gopher-maze/logger"
	"github.com/trvswgnr/gopher-maze/model"
)

// LoadTextures builds the procedural set and then replaces every texture for
// which dir holds a PNG:
//
//	wall-<cell>.png, wall-<cell>-dark.png
//	sprite-<n>.png, enemy-<n>.png, weapon-<n>.png
//
// An empty dir keeps the procedural set as is.
func LoadTextures(dir string, size int) (*TextureSet, error) {
	ts := ProceduralTextures(size)
	if dir == "" {
		return ts, nil
	}
	return ts, loadDir(ts, os.DirFS(dir))
}

func loadDir(ts *TextureSet, fsys fs.FS) error {
	log := logger.For("textures")
	loaded := 0

	for wall := range brickColors {
		bright, err := readPNG(fsys, fmt.Sprintf("wall-%c.png", wall))
		if err != nil {
			return err
		}
		if bright == nil {
			continue
		}
		dark, err := readPNG(fsys, fmt.Sprintf("wall-%c-dark.png", wall))
		if err != nil {
			return err
		}
		ts.SetWall(wall, bright, dark)
		loaded++
	}

	sheets := []struct {
		prefix string
		sheet  Sheet
	}{
		{"sprite", SheetSprites},
		{"enemy", SheetEnemy},
	}
	for _, s := range sheets {
		for i := 0; i < ts.SpriteCount(s.sheet); i++ {
			img, err := readPNG(fsys, fmt.Sprintf("%s-%d.png", s.prefix, i))
			if err != nil {
				return err
			}
			if img != nil && ts.ReplaceSprite(s.sheet, i, img) {
				loaded++
			}
		}
	}

	for i := 0; i < ts.WeaponFrames(); i++ {
		img, err := readPNG(fsys, fmt.Sprintf("weapon-%d.png", i))
		if err != nil {
			return err
		}
		if img != nil && ts.ReplaceWeaponFrame(i, img) {
			loaded++
		}
	}

	log.WithFields(logrus.Fields{"loaded": loaded}).Info("textures loaded")
	return nil
}

// readPNG returns nil without error when the file does not exist.
func readPNG(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", name, err)
	}
	return img, nil
}

// Walls lists the wall types with textures in the set.
func (ts *TextureSet) Walls() []model.Cell {
	walls := make([]model.Cell, 0, len(ts.walls))
	for w := range ts.walls {
		walls = append(walls, w)
	}
	return walls
}
