package systems

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/automoto/pixelrunner/assets"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/leveldata"
	"github.com/automoto/pixelrunner/shared/terrain"
	"github.com/automoto/pixelrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// newMask builds a white mask of w x h with the given rectangles painted solid.
func newMask(t *testing.T, w, h int, solids ...image.Rectangle) *terrain.Mask {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for _, r := range solids {
		draw.Draw(img, r, image.NewUniform(cfg.Terrain.SolidColor), image.Point{}, draw.Src)
	}
	m, err := terrain.NewMask(img, cfg.Terrain.SolidColor)
	if err != nil {
		t.Fatalf("NewMask: %v", err)
	}
	return m
}

// floorLevel is 1600x700 with a solid floor from y=600 down.
func floorLevel(t *testing.T, data leveldata.MapData) *assets.Level {
	t.Helper()
	data.Width, data.Height = 1600, 700
	return &assets.Level{
		Name: "test",
		Data: &data,
		Mask: newMask(t, 1600, 700, image.Rect(0, 600, 1600, 700)),
	}
}

func newWorld(t *testing.T, level *assets.Level) (donburi.World, *donburi.Entry) {
	t.Helper()
	w := donburi.NewWorld()
	player, err := factory.PopulateLevel(w, level)
	if err != nil {
		t.Fatalf("PopulateLevel: %v", err)
	}
	return w, player
}

func spawnAt(x, y float64) *leveldata.SpawnPoint {
	return &leveldata.SpawnPoint{X: x, Y: y}
}

func firstEnemy(t *testing.T, w donburi.World, kind cfg.EnemyKind) *components.EnemyData {
	t.Helper()
	var out *components.EnemyData
	components.Enemy.Each(w, func(e *donburi.Entry) {
		if d := components.Enemy.Get(e); d.Kind == kind && out == nil {
			out = d
		}
	})
	if out == nil {
		t.Fatalf("no %s enemy", kind)
	}
	return out
}

func countParticles(w donburi.World, kind components.ParticleKind) int {
	n := 0
	components.Particle.Each(w, func(e *donburi.Entry) {
		if components.Particle.Get(e).Kind == kind {
			n++
		}
	})
	return n
}

func footprint(p *components.PlayerData) image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}
