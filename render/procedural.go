package render

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/trvswgnr/gopher-maze/engine"
	"github.com/trvswgnr/gopher-maze/model"
)

// Procedural textures stand in when no texture directory is configured.

var brickColors = map[model.Cell]color.RGBA{
	'1': colornames.Firebrick,
	'2': colornames.Seagreen,
	'3': colornames.Steelblue,
	'4': colornames.Goldenrod,
	'E': colornames.Gold,
}

func blank(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, engine.ChromaKey)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// Brick draws a brick wall pattern with mortar lines.
func Brick(size int, base color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	mortar := colornames.Lightgray
	rowH := max(size/8, 2)
	brickW := max(size/4, 2)
	for y := 0; y < size; y++ {
		row := y / rowH
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		for x := 0; x < size; x++ {
			c := base
			if y%rowH == 0 || (x+offset)%brickW == 0 {
				c = mortar
			} else if (x*7+y*13)%11 == 0 {
				c = Darken(base)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// decorationShapes are drawn as simple silhouettes on a chroma key background.
var decorationShapes = []func(img *image.RGBA, s int){
	// barrel
	func(img *image.RGBA, s int) {
		fillRect(img, s/4, s/3, s*3/4, s, colornames.Saddlebrown)
		fillRect(img, s/4, s/2, s*3/4, s/2+max(s/16, 1), colornames.Dimgray)
	},
	// pillar
	func(img *image.RGBA, s int) {
		fillRect(img, s*3/8, s/8, s*5/8, s, colornames.Silver)
	},
	// plant
	func(img *image.RGBA, s int) {
		fillRect(img, s*3/8, s*3/4, s*5/8, s, colornames.Sienna)
		fillRect(img, s/4, s/3, s*3/4, s*3/4, colornames.Forestgreen)
	},
	// lamp
	func(img *image.RGBA, s int) {
		fillRect(img, s*7/16, s/4, s*9/16, s, colornames.Darkslategray)
		fillRect(img, s/3, s/8, s*2/3, s/4, colornames.Lightyellow)
	},
}

var pickupShapes = map[model.PickupKind]func(img *image.RGBA, s int){
	model.PickupHealth: func(img *image.RGBA, s int) {
		fillRect(img, s/4, s/4, s*3/4, s*3/4, colornames.White)
		fillRect(img, s*7/16, s/3, s*9/16, s*2/3, colornames.Red)
		fillRect(img, s/3, s*7/16, s*2/3, s*9/16, colornames.Red)
	},
	model.PickupAmmo: func(img *image.RGBA, s int) {
		fillRect(img, s/4, s/2, s*3/4, s, colornames.Olivedrab)
	},
	model.PickupKey: func(img *image.RGBA, s int) {
		fillRect(img, s/4, s*5/8, s*3/4, s*3/4, colornames.Gold)
		fillRect(img, s/4, s/2, s/2, s*7/8, colornames.Gold)
	},
	model.PickupTreasure: func(img *image.RGBA, s int) {
		fillRect(img, s/4, s/2, s*3/4, s, colornames.Goldenrod)
		fillRect(img, s/3, s*5/8, s*2/3, s*3/4, colornames.Yellow)
	},
}

// ratFrame draws one frame of the enemy strip. Walk frames shift the legs,
// attack frames open the jaw, death frames flatten the body.
func ratFrame(s, frame int) *image.RGBA {
	img := blank(s)
	body := colornames.Gray
	switch {
	case frame >= 7:
		h := s / 4 / (frame - 5)
		fillRect(img, s/8, s-h, s*7/8, s, colornames.Darkred)
		return img
	case frame >= 4:
		body = colornames.Rosybrown
	}
	fillRect(img, s/4, s/2, s*3/4, s*7/8, body)
	fillRect(img, s/3, s/3, s*2/3, s/2, body)
	fillRect(img, s*3/8, s*3/8, s*7/16, s*7/16, colornames.Red)
	fillRect(img, s*9/16, s*3/8, s*5/8, s*7/16, colornames.Red)
	leg := (frame % 4) * s / 16
	fillRect(img, s/4+leg, s*7/8, s/4+leg+s/16, s, colornames.Dimgray)
	fillRect(img, s*3/4-leg-s/16, s*7/8, s*3/4-leg, s, colornames.Dimgray)
	if frame >= 4 {
		jaw := (frame - 3) * s / 32
		fillRect(img, s*3/8, s/2, s*5/8, s/2+jaw, colornames.White)
	}
	return img
}

func weaponFrame(w, h, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, engine.ChromaKey)
		}
	}
	recoil := 0
	if frame > 0 {
		recoil = h / 16 * (frame % 2)
	}
	fillRect(img, w*3/8, h/4+recoil, w*5/8, h, colornames.Dimgray)
	fillRect(img, w*7/16, 0+recoil, w*9/16, h/4+recoil, colornames.Darkslategray)
	if frame > 0 {
		fillRect(img, w*3/8, 0, w*5/8, h/8, colornames.Orange)
	}
	return img
}

// EnemyFrames is the length of the enemy texture strip: walk 0-3, attack 4-6,
// death 7-9.
const EnemyFrames = 10

// ProceduralTextures builds a complete texture set without any files.
func ProceduralTextures(size int) *TextureSet {
	ts := NewTextureSet(size)
	for wall, base := range brickColors {
		ts.SetWall(wall, Brick(size, base), nil)
	}
	for _, draw := range decorationShapes {
		img := blank(size)
		draw(img, size)
		ts.AddSprite(SheetSprites, img)
	}
	for kind := model.PickupHealth; kind <= model.PickupTreasure; kind++ {
		img := blank(size)
		pickupShapes[kind](img, size)
		ts.AddSprite(SheetSprites, img)
	}
	for frame := 0; frame < EnemyFrames; frame++ {
		ts.AddSprite(SheetEnemy, ratFrame(size, frame))
	}
	for frame := 0; frame < 4; frame++ {
		ts.AddWeaponFrame(weaponFrame(size*2, size*2, frame))
	}
	return ts
}
