package archetypes

import (
	"github.com/automoto/pixelrunner/components"
	"github.com/automoto/pixelrunner/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Boundaries,
		components.Object,
		components.Animation,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Projectile = newArchetype(
		tags.Particle,
		tags.Projectile,
		components.Particle,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Map = newArchetype(
		components.Map,
	)
	Camera = newArchetype(
		components.Camera,
	)
	SoundQueue = newArchetype(
		components.SoundQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
