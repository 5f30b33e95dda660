package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/trvswgnr/gopher-maze/model"
	"github.com/trvswgnr/gopher-maze/raycast"
)

// Texture is a decoded RGBA pixel buffer.
type Texture struct {
	img *image.RGBA
}

// NewTexture copies src into a texture, rescaling it to size x size with
// nearest-neighbour sampling when size is positive.
func NewTexture(src image.Image, size int) *Texture {
	b := src.Bounds()
	if size <= 0 {
		size = max(b.Dx(), b.Dy())
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return &Texture{img: dst}
}

func (t *Texture) Width() int  { return t.img.Rect.Dx() }
func (t *Texture) Height() int { return t.img.Rect.Dy() }

// At returns the texel at x, y clamped to the texture.
func (t *Texture) At(x, y int) color.RGBA {
	x = min(max(x, 0), t.Width()-1)
	y = min(max(y, 0), t.Height()-1)
	return t.img.RGBAAt(x, y)
}

func (t *Texture) Image() *image.RGBA {
	return t.img
}

// WallTextures holds the lighting variants of one wall material. Bright is used
// for vertical faces, Dark for horizontal ones.
type WallTextures struct {
	Bright *Texture
	Dark   *Texture
}

// Sheet selects which sprite strip a billboard samples from.
type Sheet int

const (
	SheetSprites Sheet = iota
	SheetEnemy
)

// TextureSet maps wall types and sprite indexes to textures.
type TextureSet struct {
	walls   map[model.Cell]WallTextures
	sheets  map[Sheet][]*Texture
	weapon  []*Texture
	texSize int
}

func NewTextureSet(size int) *TextureSet {
	return &TextureSet{
		walls:   make(map[model.Cell]WallTextures),
		sheets:  make(map[Sheet][]*Texture),
		texSize: size,
	}
}

func (ts *TextureSet) Size() int {
	return ts.texSize
}

// SetWall registers both lighting variants for a wall type. A nil dark variant
// is derived from the bright one at half intensity.
func (ts *TextureSet) SetWall(wall model.Cell, bright, dark image.Image) {
	wt := WallTextures{Bright: NewTexture(bright, ts.texSize)}
	if dark != nil {
		wt.Dark = NewTexture(dark, ts.texSize)
	} else {
		wt.Dark = shade(wt.Bright)
	}
	ts.walls[wall] = wt
}

func (ts *TextureSet) AddSprite(sheet Sheet, img image.Image) int {
	ts.sheets[sheet] = append(ts.sheets[sheet], NewTexture(img, ts.texSize))
	return len(ts.sheets[sheet]) - 1
}

// ReplaceSprite swaps an existing sprite texture, false when index is unused.
func (ts *TextureSet) ReplaceSprite(sheet Sheet, index int, img image.Image) bool {
	textures := ts.sheets[sheet]
	if index < 0 || index >= len(textures) {
		return false
	}
	textures[index] = NewTexture(img, ts.texSize)
	return true
}

// SpriteCount is the number of textures on a sheet.
func (ts *TextureSet) SpriteCount(sheet Sheet) int {
	return len(ts.sheets[sheet])
}

func (ts *TextureSet) ReplaceWeaponFrame(index int, img image.Image) bool {
	if index < 0 || index >= len(ts.weapon) {
		return false
	}
	ts.weapon[index] = NewTexture(img, 0)
	return true
}

func (ts *TextureSet) WeaponFrames() int {
	return len(ts.weapon)
}

func (ts *TextureSet) AddWeaponFrame(img image.Image) {
	ts.weapon = append(ts.weapon, NewTexture(img, 0))
}

// Wall looks up the texture for a wall type as seen from a side, nil when the
// wall type has no texture.
func (ts *TextureSet) Wall(wall model.Cell, side raycast.Side) *Texture {
	if ts == nil {
		return nil
	}
	wt, ok := ts.walls[wall]
	if !ok {
		return nil
	}
	if side == raycast.Vertical {
		return wt.Bright
	}
	return wt.Dark
}

// Sprite returns a sprite texture, false when the index has no texture.
func (ts *TextureSet) Sprite(sheet Sheet, index int) (*Texture, bool) {
	if ts == nil {
		return nil, false
	}
	textures := ts.sheets[sheet]
	if index < 0 || index >= len(textures) {
		return nil, false
	}
	return textures[index], true
}

func (ts *TextureSet) WeaponFrame(index int) (*Texture, bool) {
	if ts == nil || index < 0 || index >= len(ts.weapon) {
		return nil, false
	}
	return ts.weapon[index], true
}

func shade(t *Texture) *Texture {
	b := t.img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, y, Darken(t.img.RGBAAt(x, y)))
		}
	}
	return &Texture{img: dst}
}

// Darken halves every colour channel, keeping alpha.
func Darken(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}
}

// materials is the flat colour used for walls without a texture.
var materials = map[model.Cell]color.RGBA{
	'1': {180, 50, 50, 255},
	'2': {50, 180, 50, 255},
	'3': {50, 50, 180, 255},
	'4': {180, 180, 50, 255},
}

var defaultMaterial = color.RGBA{128, 128, 128, 255}

// WallColor is the untextured colour of a wall type seen from a side.
func WallColor(wall model.Cell, side raycast.Side) color.RGBA {
	c, ok := materials[wall]
	if !ok {
		c = defaultMaterial
	}
	if side == raycast.Horizontal {
		c = Darken(c)
	}
	return c
}
