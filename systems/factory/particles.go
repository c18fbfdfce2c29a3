package factory

import (
	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/automoto/pixelrunner/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateBurst spawns a radial collision burst around (x, y). Particle ids run
// 0..Count-1 and pick the direction each particle flies out along.
func CreateBurst(w donburi.World, x, y float64) []*donburi.Entry {
	c := cfg.Particle.Burst
	out := make([]*donburi.Entry, 0, c.Count)
	for i := 0; i < c.Count; i++ {
		p := archetypes.Particle.Spawn(w)
		components.Particle.SetValue(p, components.ParticleData{
			ID:       i,
			Kind:     components.ParticleCollision,
			X:        x,
			Y:        y,
			OriginX:  x,
			OriginY:  y,
			Size:     float64(c.Size),
			Color:    c.Color,
			Alpha:    1,
			Lifetime: c.Lifetime,
		})
		out = append(out, p)
	}
	return out
}

// CreateDust spawns a dust puff that grows and fades out over its lifetime.
func CreateDust(w donburi.World, x, y float64) *donburi.Entry {
	c := cfg.Particle.Dust
	life := float32(c.Lifetime)

	p := archetypes.Particle.Spawn(w)
	components.Particle.SetValue(p, components.ParticleData{
		ID:         nextParticleID(w),
		Kind:       components.ParticleDust,
		X:          x,
		Y:          y,
		OriginX:    x,
		OriginY:    y,
		Size:       c.StartSize,
		Color:      c.Color,
		Alpha:      1,
		Lifetime:   c.Lifetime,
		SizeTween:  gween.New(float32(c.StartSize), float32(c.EndSize), life, ease.OutQuad),
		AlphaTween: gween.New(1, 0, life, ease.Linear),
	})
	return p
}

// CreateProjectile spawns a projectile fired by owner from (x, y) toward the
// target point.
func CreateProjectile(w donburi.World, owner donburi.Entity, x, y, targetX, targetY, speed float64) *donburi.Entry {
	c := cfg.Particle.Projectile
	dirX, dirY := gamemath.Direction(x, y, targetX, targetY)

	p := archetypes.Projectile.Spawn(w)
	components.Particle.SetValue(p, components.ParticleData{
		ID:       nextParticleID(w),
		Kind:     components.ParticleProjectile,
		X:        x,
		Y:        y,
		OriginX:  x,
		OriginY:  y,
		Size:     float64(c.Size),
		Color:    c.Color,
		Alpha:    1,
		Lifetime: c.Lifetime,
		DirX:     dirX,
		DirY:     dirY,
		Speed:    speed,
		Owner:    owner,
	})
	newObject(w, p, int(x), int(y), c.Size, c.Size, tags.ResolvProjectile)
	return p
}

func nextParticleID(w donburi.World) int {
	entry, ok := components.Map.First(w)
	if !ok {
		return 0
	}
	m := components.Map.Get(entry)
	id := m.NextParticle
	m.NextParticle++
	return id
}
