package systems

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// Engine runs the per-tick pipeline over one session world. Steps execute
// strictly in order and never concurrently.
type Engine struct {
	world donburi.World
	rng   *rand.Rand
}

func NewEngine(world donburi.World, seed uint64) *Engine {
	return &Engine{
		world: world,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (e *Engine) World() donburi.World {
	return e.world
}

// Step advances the simulation by one tick scaled by dt tick units. An error
// means an animation lookup failed and the world must not be rendered.
func (e *Engine) Step(dt float64) error {
	w := e.world

	// 1. boundaries at the current position
	UpdateBoundaries(w)

	// 2. player physics
	UpdatePlayerPhysics(w, dt)

	// 3. camera
	UpdateCamera(w)

	// 4. map entities
	UpdateItems(w)
	UpdateEnemies(w)
	UpdateParticles(w, e.rng)
	SpawnDust(w)
	UpdateMapState(w)
	if err := UpdateAnimations(w); err != nil {
		return err
	}

	// 5. collisions
	if err := ResolveCollisions(w); err != nil {
		return err
	}
	RemoveExpiredParticles(w)

	mapData(w).Tick++
	return nil
}
