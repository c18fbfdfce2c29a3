package systems

import (
	"image"
	"testing"

	"github.com/automoto/pixelrunner/components"
)

func TestCollisionBoundariesFloorBelow(t *testing.T) {
	mask := newMask(t, 800, 700, image.Rect(0, 600, 800, 620))
	p := &components.PlayerData{X: 100, Y: 300, Width: 32, Height: 48}

	b := CollisionBoundaries(mask, p)
	if b.Bottom != 600-p.Height {
		t.Errorf("Bottom = %d, want %d", b.Bottom, 600-p.Height)
	}
	if b.Top != -1 {
		t.Errorf("Top = %d, want -1", b.Top)
	}
	if b.Left != -1 {
		t.Errorf("Left = %d, want -1", b.Left)
	}
	if want := 800 - p.Width + 1; b.Right != want {
		t.Errorf("Right = %d, want %d", b.Right, want)
	}
}

func TestCollisionBoundariesWalls(t *testing.T) {
	mask := newMask(t, 800, 700,
		image.Rect(40, 0, 50, 700),     // left wall
		image.Rect(400, 200, 420, 700), // right wall, only below y=200
		image.Rect(0, 100, 800, 110),   // ceiling
	)

	tests := []struct {
		name string
		p    components.PlayerData
		want components.BoundariesData
	}{
		{
			name: "between walls",
			p:    components.PlayerData{X: 100, Y: 300, Width: 32, Height: 48},
			want: components.BoundariesData{Left: 49, Right: 400 - 32 + 1, Top: 109, Bottom: 700 - 48},
		},
		{
			name: "above right wall",
			p:    components.PlayerData{X: 100, Y: 120, Width: 32, Height: 48},
			want: components.BoundariesData{Left: 49, Right: 800 - 32 + 1, Top: 109, Bottom: 700 - 48},
		},
		{
			name: "span touches wall top by one row",
			p:    components.PlayerData{X: 100, Y: 153, Width: 32, Height: 48},
			want: components.BoundariesData{Left: 49, Right: 400 - 32 + 1, Top: 109, Bottom: 700 - 48},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollisionBoundaries(mask, &tt.p)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCollisionBoundariesOutOfRangeIsSolid(t *testing.T) {
	mask := newMask(t, 200, 200)
	// Footprint sticks out above the mask: every horizontal probe fails closed
	p := &components.PlayerData{X: 50, Y: -10, Width: 32, Height: 48}

	b := CollisionBoundaries(mask, p)
	if b.Left != p.X-1 || b.Right != p.X+1 {
		t.Errorf("horizontal = [%d, %d], want [%d, %d]", b.Left, b.Right, p.X-1, p.X+1)
	}
}

func TestRecomputeXBoundariesKeepsVertical(t *testing.T) {
	mask := newMask(t, 800, 700, image.Rect(300, 550, 320, 700))
	p := &components.PlayerData{X: 200, Y: 400, Width: 32, Height: 48}
	b := CollisionBoundaries(mask, p)
	top, bottom := b.Top, b.Bottom

	p.Y = 520
	RecomputeXBoundaries(mask, p, &b)
	if b.Right != 300-p.Width+1 {
		t.Errorf("Right = %d, want %d", b.Right, 300-p.Width+1)
	}
	if b.Top != top || b.Bottom != bottom {
		t.Errorf("vertical changed: top %d->%d bottom %d->%d", top, b.Top, bottom, b.Bottom)
	}
}
