package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateParticles advances every particle by one frame and applies its
// kind's transform. Expired particles are left for RemoveExpiredParticles.
func UpdateParticles(w donburi.World, rng *rand.Rand) {
	components.Particle.Each(w, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Expired() {
			return
		}
		p.Frame++

		switch p.Kind {
		case components.ParticleCollision:
			stepBurst(p)
		case components.ParticleDust:
			stepDust(p)
		case components.ParticleProjectile:
			stepProjectile(p, rng)
			components.Object.Get(entry).MoveTo(int(p.X), int(p.Y))
		}
	})
}

// stepBurst pushes a burst particle outward along its angle until the radius
// cap, then lets it fall.
func stepBurst(p *components.ParticleData) {
	c := cfg.Particle.Burst
	if p.Radius < c.MaxRadius {
		p.Radius = math.Min(p.Radius+c.RadiusStep, c.MaxRadius)
		angle := BurstAngle(p.ID, c.Count)
		p.X = p.OriginX + math.Cos(angle)*p.Radius
		p.Y = p.OriginY + math.Sin(angle)*p.Radius
		return
	}
	p.FallSpeed += c.Gravity
	p.Y += p.FallSpeed
}

// BurstAngle maps a burst particle id to its direction in radians. Ids are
// spread evenly around the circle, 45 degrees apart for a burst of 8.
func BurstAngle(id, count int) float64 {
	if count <= 0 {
		count = 1
	}
	return float64(id%count) * 2 * math.Pi / float64(count)
}

func stepDust(p *components.ParticleData) {
	if p.SizeTween != nil {
		size, _ := p.SizeTween.Update(1)
		p.Size = float64(size)
	}
	if p.AlphaTween != nil {
		alpha, _ := p.AlphaTween.Update(1)
		p.Alpha = math.Max(0, float64(alpha))
	}
}

// stepProjectile moves a projectile along its heading with a small random
// wobble.
func stepProjectile(p *components.ParticleData, rng *rand.Rand) {
	j := cfg.Particle.Projectile.Jitter
	if j > 0 && rng != nil {
		p.JitterX = rng.IntN(2*j+1) - j
		p.JitterY = rng.IntN(2*j+1) - j
	}
	p.X += p.DirX*p.Speed + float64(p.JitterX)
	p.Y += p.DirY*p.Speed + float64(p.JitterY)
}

// SpawnDust drops a dust puff behind the player's feet every SpawnInterval
// ticks while it runs on the ground.
func SpawnDust(w donburi.World) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	bounds := components.Boundaries.Get(playerEntry)

	if !player.Moving || !player.Grounded(bounds) {
		player.DustTimer = 0
		return
	}
	if player.DustTimer > 0 {
		player.DustTimer--
		return
	}
	player.DustTimer = cfg.Particle.Dust.SpawnInterval - 1

	x := float64(player.X + player.Width/2 - player.Direction*player.Width/2)
	y := float64(player.Y + player.Height)
	factory.CreateDust(w, x, y)
}

// RemoveExpiredParticles deletes every particle whose frame passed its
// lifetime.
func RemoveExpiredParticles(w donburi.World) {
	var expired []*donburi.Entry
	components.Particle.Each(w, func(entry *donburi.Entry) {
		if components.Particle.Get(entry).Expired() {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		factory.RemoveEntity(w, entry)
	}
}
