// Package terrain holds the immutable collision mask of a level. One reserved
// reference color marks impassable pixels; everything else is open space.
package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG masks
	"io"
	"io/fs"

	_ "golang.org/x/image/bmp" // BMP masks
)

var ErrEmptyMask = errors.New("terrain mask has no pixels")

// Mask is a read-only solid/open bitmap. It is never mutated after
// construction and may be shared between goroutines.
type Mask struct {
	width  int
	height int
	solid  []bool
}

// NewMask samples img once and records which pixels match the reference color.
func NewMask(img image.Image, reference color.Color) (*Mask, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyMask
	}

	ref := color.RGBAModel.Convert(reference).(color.RGBA)
	m := &Mask{
		width:  b.Dx(),
		height: b.Dy(),
		solid:  make([]bool, b.Dx()*b.Dy()),
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			m.solid[y*m.width+x] = c == ref
		}
	}
	return m, nil
}

// Decode reads a PNG or BMP image and builds a mask from it.
func Decode(r io.Reader, reference color.Color) (*Mask, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode terrain image: %w", err)
	}
	m, err := NewMask(img, reference)
	if err != nil {
		return nil, fmt.Errorf("terrain image (%s): %w", format, err)
	}
	return m, nil
}

// Load opens path in fsys and decodes it as a mask.
func Load(fsys fs.FS, path string, reference color.Color) (*Mask, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terrain %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f, reference)
	if err != nil {
		return nil, fmt.Errorf("load terrain %s: %w", path, err)
	}
	return m, nil
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask rectangle anchored at the origin.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Solid reports whether a pixel is impassable. Pixels outside the mask count
// as solid.
func (m *Mask) Solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return true
	}
	return m.solid[y*m.width+x]
}

// Hit reports whether any pixel of r is solid or lies outside the mask.
// An empty rectangle never hits.
func (m *Mask) Hit(r image.Rectangle) bool {
	if r.Empty() {
		return false
	}
	if !r.In(m.Bounds()) {
		return true
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.solid[y*m.width : (y+1)*m.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[x] {
				return true
			}
		}
	}
	return false
}
