package components

import (
	"image/color"

	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParticleKind selects the per-tick transform of a particle.
type ParticleKind int

const (
	ParticleDust ParticleKind = iota
	ParticleCollision
	ParticleProjectile
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleDust:
		return "dust"
	case ParticleCollision:
		return "collision"
	case ParticleProjectile:
		return "projectile"
	}
	return "unknown"
}

type ParticleData struct {
	ID   int
	Kind ParticleKind

	X, Y             float64
	OriginX, OriginY float64
	Size             float64
	Color            color.RGBA
	Alpha            float64 // 0.0 - 1.0

	Frame    int
	Lifetime int // the particle is removed once Frame > Lifetime

	// Collision burst
	Radius    float64
	FallSpeed float64

	// Projectile
	DirX, DirY       float64
	Speed            float64
	JitterX, JitterY int
	Owner            donburi.Entity

	// Dust
	SizeTween  *gween.Tween
	AlphaTween *gween.Tween
}

// Expired reports whether the particle has passed its lifetime.
func (p *ParticleData) Expired() bool {
	return p.Frame > p.Lifetime
}

func (p *ParticleData) Rect() gamemath.Rect {
	s := int(p.Size)
	return gamemath.Rect{X: int(p.X), Y: int(p.Y), W: s, H: s}
}

var Particle = donburi.NewComponentType[ParticleData]()
