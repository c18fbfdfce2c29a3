package systems

import (
	"image"

	"github.com/automoto/pixelrunner/components"
	"github.com/automoto/pixelrunner/shared/terrain"
	"github.com/yohamta/donburi"
)

// CollisionBoundaries scans the terrain mask outward from the player's
// footprint in all four directions. Each probe is a one pixel strip spanning
// the footprint's orthogonal extent; the first strip that touches a solid
// pixel sets the boundary. A scan that reaches the mask edge uses the edge.
//
// Left and Top hold the solid coordinate itself (-1 past the edge), Right and
// Bottom are expressed as the largest legal x+1 and y, so clamping a position
// to [Left+1, Right-1] and [Top+1, Bottom] keeps the footprint clear.
func CollisionBoundaries(mask *terrain.Mask, p *components.PlayerData) components.BoundariesData {
	var b components.BoundariesData
	recomputeX(mask, p, &b)
	recomputeY(mask, p, &b)
	return b
}

// RecomputeXBoundaries refreshes only the horizontal limits, keeping the
// vertical ones. Used after a vertical move inside the same tick.
func RecomputeXBoundaries(mask *terrain.Mask, p *components.PlayerData, b *components.BoundariesData) {
	recomputeX(mask, p, b)
}

func recomputeX(mask *terrain.Mask, p *components.PlayerData, b *components.BoundariesData) {
	b.Left = -1
	for x := p.X - 1; x >= 0; x-- {
		if mask.Hit(image.Rect(x, p.Y, x+1, p.Y+p.Height)) {
			b.Left = x
			break
		}
	}

	b.Right = mask.Width() - p.Width + 1
	for x := p.X + p.Width; x < mask.Width(); x++ {
		if mask.Hit(image.Rect(x, p.Y, x+1, p.Y+p.Height)) {
			b.Right = x - p.Width + 1
			break
		}
	}
}

func recomputeY(mask *terrain.Mask, p *components.PlayerData, b *components.BoundariesData) {
	b.Top = -1
	for y := p.Y - 1; y >= 0; y-- {
		if mask.Hit(image.Rect(p.X, y, p.X+p.Width, y+1)) {
			b.Top = y
			break
		}
	}

	b.Bottom = mask.Height() - p.Height
	for y := p.Y + p.Height; y < mask.Height(); y++ {
		if mask.Hit(image.Rect(p.X, y, p.X+p.Width, y+1)) {
			b.Bottom = y - p.Height
			break
		}
	}
}

// UpdateBoundaries derives the player's boundaries for this tick.
func UpdateBoundaries(w donburi.World) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	m := mapData(w)
	*components.Boundaries.Get(playerEntry) = CollisionBoundaries(m.Mask, components.Player.Get(playerEntry))
}
