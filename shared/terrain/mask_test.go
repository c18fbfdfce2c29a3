package terrain

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

var solidColor = color.RGBA{A: 255}

func stripImage(w, h, stripY int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 160, B: 220, A: 255})
		}
	}
	for x := 0; x < w; x++ {
		img.Set(x, stripY, solidColor)
	}
	return img
}

func TestNewMaskEmpty(t *testing.T) {
	_, err := NewMask(image.NewRGBA(image.Rect(0, 0, 0, 0)), solidColor)
	if err != ErrEmptyMask {
		t.Fatalf("expected ErrEmptyMask, got %v", err)
	}
}

func TestSolidOutOfRangeFailsClosed(t *testing.T) {
	m, err := NewMask(stripImage(10, 10, 5), solidColor)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, false},
		{3, 5, true},
		{-1, 0, true},
		{0, -1, true},
		{10, 0, true},
		{0, 10, true},
	}
	for _, tt := range tests {
		if got := m.Solid(tt.x, tt.y); got != tt.want {
			t.Errorf("Solid(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHit(t *testing.T) {
	m, err := NewMask(stripImage(20, 20, 12), solidColor)
	if err != nil {
		t.Fatal(err)
	}

	if m.Hit(image.Rect(0, 0, 20, 12)) {
		t.Error("region above the strip should be clear")
	}
	if !m.Hit(image.Rect(4, 12, 8, 13)) {
		t.Error("region on the strip should hit")
	}
	if !m.Hit(image.Rect(18, 0, 22, 2)) {
		t.Error("region leaving the mask should hit")
	}
	if m.Hit(image.Rectangle{}) {
		t.Error("empty region should not hit")
	}
}

func TestDecodeFormats(t *testing.T) {
	img := stripImage(16, 16, 8)

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, img); err != nil {
		t.Fatal(err)
	}

	for name, buf := range map[string]*bytes.Buffer{"png": &pngBuf, "bmp": &bmpBuf} {
		m, err := Decode(buf, solidColor)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if m.Width() != 16 || m.Height() != 16 {
			t.Errorf("%s: size = %dx%d", name, m.Width(), m.Height())
		}
		if !m.Solid(3, 8) || m.Solid(3, 7) {
			t.Errorf("%s: strip not preserved", name)
		}
	}
}
