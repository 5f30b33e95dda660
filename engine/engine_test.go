package engine

import (
	"image"
	"image/color"
	"testing"
)

func TestImageSetClips(t *testing.T) {
	img := NewImage(4, 3)
	red := color.RGBA{255, 0, 0, 255}

	img.Set(-1, 0, red)
	img.Set(4, 0, red)
	img.Set(0, 3, red)
	img.Set(3, 2, red)

	if got := img.At(3, 2); got != red {
		t.Fatalf("At(3,2) = %v", got)
	}
	set := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			set++
		}
	}
	if set != 1 {
		t.Fatalf("%d pixels written, want 1", set)
	}
}

func TestIsTransparent(t *testing.T) {
	tests := []struct {
		c    color.RGBA
		want bool
	}{
		{ChromaKey, true},
		{color.RGBA{0, 255, 255, 10}, true},
		{color.RGBA{10, 20, 30, 127}, true},
		{color.RGBA{10, 20, 30, 128}, false},
		{color.RGBA{0, 255, 254, 255}, false},
	}

	for _, tt := range tests {
		if got := IsTransparent(tt.c); got != tt.want {
			t.Errorf("IsTransparent(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestDrawImageScalesAndSkipsTransparent(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	src.SetRGBA(1, 0, ChromaKey)

	dst := NewImage(8, 8)
	op := NewDrawImageOptions()
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(1, 1)
	DrawImage(dst, src, op)

	for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if got := dst.At(p[0], p[1]); got != (color.RGBA{1, 2, 3, 255}) {
			t.Errorf("At%v = %v", p, got)
		}
	}
	if got := dst.At(3, 1); got.A != 0 {
		t.Errorf("chroma key texel was drawn: %v", got)
	}
}

func TestDrawFilledRectClips(t *testing.T) {
	dst := NewImage(4, 4)
	c := color.RGBA{9, 9, 9, 255}
	DrawFilledRect(dst, -2, -2, 4, 4, c)

	if dst.At(1, 1) != c || dst.At(2, 2).A != 0 {
		t.Fatal("rectangle not clipped correctly")
	}
}
