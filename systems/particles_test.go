package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/leveldata"
	"github.com/automoto/pixelrunner/systems/factory"
	"github.com/yohamta/donburi"
)

func TestBurstLifetime(t *testing.T) {
	w, _ := newWorld(t, floorLevel(t, leveldata.MapData{PlayerSpawn: spawnAt(100, 552)}))
	rng := rand.New(rand.NewPCG(1, 2))
	burst := factory.CreateBurst(w, 400, 300)
	life := cfg.Particle.Burst.Lifetime

	for tick := 1; tick <= life; tick++ {
		UpdateParticles(w, rng)
		RemoveExpiredParticles(w)
		for _, e := range burst {
			if !e.Valid() {
				t.Fatalf("tick %d: particle removed before its lifetime", tick)
			}
			if f := components.Particle.Get(e).Frame; f != tick {
				t.Fatalf("tick %d: frame = %d", tick, f)
			}
		}
	}

	UpdateParticles(w, rng)
	RemoveExpiredParticles(w)
	if n := countParticles(w, components.ParticleCollision); n != 0 {
		t.Errorf("%d burst particles left after lifetime", n)
	}
}

func TestBurstSpreadsThenFalls(t *testing.T) {
	w, _ := newWorld(t, floorLevel(t, leveldata.MapData{PlayerSpawn: spawnAt(100, 552)}))
	rng := rand.New(rand.NewPCG(1, 2))
	burst := factory.CreateBurst(w, 400, 300)
	c := cfg.Particle.Burst

	steps := int(math.Ceil(c.MaxRadius / c.RadiusStep))
	for i := 0; i < steps; i++ {
		UpdateParticles(w, rng)
	}
	for i, e := range burst {
		p := components.Particle.Get(e)
		angle := BurstAngle(p.ID, c.Count)
		wantX, wantY := 400+math.Cos(angle)*c.MaxRadius, 300+math.Sin(angle)*c.MaxRadius
		if math.Abs(p.X-wantX) > 1e-9 || math.Abs(p.Y-wantY) > 1e-9 {
			t.Errorf("particle %d at (%.2f, %.2f), want (%.2f, %.2f)", i, p.X, p.Y, wantX, wantY)
		}
	}

	p := components.Particle.Get(burst[0])
	y := p.Y
	UpdateParticles(w, rng)
	if p.Y <= y {
		t.Errorf("y = %.2f, want below %.2f once the radius is capped", p.Y, y)
	}
}

func TestBurstAngle(t *testing.T) {
	tests := []struct {
		id, count int
		want      float64
	}{
		{0, 8, 0},
		{2, 8, math.Pi / 2},
		{4, 8, math.Pi},
		{9, 8, math.Pi / 4},
	}
	for _, tt := range tests {
		if got := BurstAngle(tt.id, tt.count); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BurstAngle(%d, %d) = %v, want %v", tt.id, tt.count, got, tt.want)
		}
	}
}

func TestDustFadesOut(t *testing.T) {
	w, _ := newWorld(t, floorLevel(t, leveldata.MapData{PlayerSpawn: spawnAt(100, 552)}))
	dust := factory.CreateDust(w, 100, 600)
	p := components.Particle.Get(dust)

	prevSize, prevAlpha := p.Size, p.Alpha
	for i := 0; i < cfg.Particle.Dust.Lifetime; i++ {
		UpdateParticles(w, nil)
		if p.Size < prevSize || p.Alpha > prevAlpha {
			t.Fatalf("frame %d: size %.2f alpha %.2f after %.2f %.2f", p.Frame, p.Size, p.Alpha, prevSize, prevAlpha)
		}
		prevSize, prevAlpha = p.Size, p.Alpha
	}
	if p.Alpha != 0 {
		t.Errorf("alpha = %v at end of life, want 0", p.Alpha)
	}
}

func TestDustSpawnsWhileRunning(t *testing.T) {
	w, playerEntry := newWorld(t, floorLevel(t, leveldata.MapData{PlayerSpawn: spawnAt(100, 552)}))
	engine := NewEngine(w, 1)
	player := components.Player.Get(playerEntry)

	if err := engine.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if n := countParticles(w, components.ParticleDust); n != 0 {
		t.Fatalf("dust = %d while standing, want 0", n)
	}

	player.Moving = true
	spawned := 0
	for i := 0; i < 2*cfg.Particle.Dust.SpawnInterval; i++ {
		before := countParticles(w, components.ParticleDust)
		if err := engine.Step(1); err != nil {
			t.Fatalf("Step: %v", err)
		}
		if countParticles(w, components.ParticleDust) > before {
			spawned++
		}
	}
	if spawned != 2 {
		t.Errorf("dust puffs = %d over two intervals, want 2", spawned)
	}
}

func TestProjectileFollowsHeading(t *testing.T) {
	w, _ := newWorld(t, floorLevel(t, leveldata.MapData{PlayerSpawn: spawnAt(100, 552)}))
	var owner donburi.Entity
	e := factory.CreateProjectile(w, owner, 800, 300, 800, 0, 5)
	p := components.Particle.Get(e)
	jitter := float64(cfg.Particle.Projectile.Jitter)

	UpdateParticles(w, rand.New(rand.NewPCG(7, 7)))
	if math.Abs(p.X-800) > jitter || math.Abs(p.Y-295) > jitter {
		t.Errorf("projectile at (%.1f, %.1f), want near (800, 295)", p.X, p.Y)
	}
}
