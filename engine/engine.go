package engine

import (
	"image"
	"image/color"
	"math"
)

// Framebuffer is the only surface the renderer writes to.
type Framebuffer interface {
	Width() int
	Height() int
	Set(x, y int, c color.RGBA)
}

// ChromaKey is the reserved colour treated as transparent in sprite textures.
var ChromaKey = color.RGBA{0, 255, 255, 255}

// AlphaThreshold is the alpha below which a texel is skipped.
const AlphaThreshold = 128

// IsTransparent reports whether a texel should be skipped when drawing.
func IsTransparent(c color.RGBA) bool {
	return c.A < AlphaThreshold || (c.R == ChromaKey.R && c.G == ChromaKey.G && c.B == ChromaKey.B)
}

// Image is an in-memory RGBA framebuffer. Its Pix layout matches
// ebiten.Image.WritePixels.
type Image struct {
	Pix    []byte
	width  int
	height int
}

func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

func (img *Image) Width() int  { return img.width }
func (img *Image) Height() int { return img.height }

// Set writes a pixel; writes outside the image are ignored.
func (img *Image) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	index := (y*img.width + x) * 4
	img.Pix[index] = c.R
	img.Pix[index+1] = c.G
	img.Pix[index+2] = c.B
	img.Pix[index+3] = c.A
}

func (img *Image) At(x, y int) color.RGBA {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return color.RGBA{}
	}
	index := (y*img.width + x) * 4
	return color.RGBA{img.Pix[index], img.Pix[index+1], img.Pix[index+2], img.Pix[index+3]}
}

func (img *Image) Fill(c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// RGBA wraps the pixels as an image.RGBA sharing the same memory.
func (img *Image) RGBA() *image.RGBA {
	return &image.RGBA{Pix: img.Pix, Stride: img.width * 4, Rect: img.Bounds()}
}

type Vector struct {
	X, Y float64
}

type GeoM struct {
	ScaleVec Vector
	Trans    Vector
}

func (g *GeoM) Scale(x, y float64) {
	g.ScaleVec.X *= x
	g.ScaleVec.Y *= y
}

func (g *GeoM) Translate(x, y float64) {
	g.Trans.X += x
	g.Trans.Y += y
}

type DrawImageOptions struct {
	GeoM GeoM
}

func NewDrawImageOptions() *DrawImageOptions {
	return &DrawImageOptions{GeoM: GeoM{ScaleVec: Vector{X: 1, Y: 1}}}
}

// DrawImage copies src onto dst with nearest-neighbour scaling, skipping
// transparent texels.
func DrawImage(dst Framebuffer, src *image.RGBA, op *DrawImageOptions) {
	if op == nil {
		op = NewDrawImageOptions()
	}
	sx, sy := op.GeoM.ScaleVec.X, op.GeoM.ScaleVec.Y
	if sx <= 0 || sy <= 0 {
		return
	}

	b := src.Bounds()
	dstW := int(math.Round(float64(b.Dx()) * sx))
	dstH := int(math.Round(float64(b.Dy()) * sy))
	x0 := int(math.Round(op.GeoM.Trans.X))
	y0 := int(math.Round(op.GeoM.Trans.Y))

	for dy := 0; dy < dstH; dy++ {
		py := y0 + dy
		if py < 0 || py >= dst.Height() {
			continue
		}
		srcY := b.Min.Y + min(int(float64(dy)/sy), b.Dy()-1)
		for dx := 0; dx < dstW; dx++ {
			px := x0 + dx
			if px < 0 || px >= dst.Width() {
				continue
			}
			srcX := b.Min.X + min(int(float64(dx)/sx), b.Dx()-1)
			c := src.RGBAAt(srcX, srcY)
			if IsTransparent(c) {
				continue
			}
			dst.Set(px, py, c)
		}
	}
}

// DrawFilledRect fills a rectangle clipped to the framebuffer.
func DrawFilledRect(dst Framebuffer, x, y, width, height int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, dst.Width()), min(y+height, dst.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			dst.Set(px, py, c)
		}
	}
}

// DrawFilledCircle fills a circle clipped to the framebuffer.
func DrawFilledCircle(dst Framebuffer, x, y, radius float64, c color.RGBA) {
	rSquared := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rSquared {
				dst.Set(int(x+dx), int(y+dy), c)
			}
		}
	}
}

// StrokeLine draws a line by stamping circles along it.
func StrokeLine(dst Framebuffer, x1, y1, x2, y2, thickness float64, c color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return
	}
	dx /= distance
	dy /= distance

	for i := 0.0; i < distance; i++ {
		DrawFilledCircle(dst, x1+dx*i, y1+dy*i, thickness/2, c)
	}
}
