package factory

import (
	"fmt"

	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/assets"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

// CreateMap spawns the map singleton for a level.
func CreateMap(w donburi.World, level *assets.Level) *donburi.Entry {
	m := archetypes.Map.Spawn(w)
	components.Map.Set(m, &components.MapData{
		Name:  level.Name,
		State: cfg.MapCollecting,
		Mask:  level.Mask,
	})
	return m
}

// PopulateLevel fills an empty world with everything a session simulates:
// space, map, camera, sound queue, player, items and enemies. It returns the
// player entry.
func PopulateLevel(w donburi.World, level *assets.Level) (*donburi.Entry, error) {
	CreateSpace(w, level.Width(), level.Height(), cfg.Terrain.CellSize, cfg.Terrain.CellSize)
	CreateMap(w, level)
	CreateCamera(w)
	CreateSoundQueue(w)

	x, y := spawnPoint(level)
	player, err := CreatePlayer(w, x, y)
	if err != nil {
		return nil, fmt.Errorf("level %s: player: %w", level.Name, err)
	}

	if err := spawnMapEntities(w, level); err != nil {
		return nil, err
	}
	return player, nil
}

// ResetLevel returns a populated world to the level's initial state. The
// player entity is reset in place; items, enemies and particles are respawned.
func ResetLevel(w donburi.World, level *assets.Level) error {
	var stale []*donburi.Entry
	components.Item.Each(w, func(e *donburi.Entry) { stale = append(stale, e) })
	components.Enemy.Each(w, func(e *donburi.Entry) { stale = append(stale, e) })
	components.Particle.Each(w, func(e *donburi.Entry) { stale = append(stale, e) })
	for _, e := range stale {
		RemoveEntity(w, e)
	}

	if entry, ok := components.Map.First(w); ok {
		m := components.Map.Get(entry)
		m.State = cfg.MapCollecting
		m.Tick = 0
		m.CompletedAt = 0
		m.NextParticle = 0
	}
	if entry, ok := components.Camera.First(w); ok {
		cam := components.Camera.Get(entry)
		cam.X, cam.Y, cam.PrevX, cam.PrevY = 0, 0, 0, 0
	}
	if entry, ok := components.SoundQueue.First(w); ok {
		components.SoundQueue.Get(entry).Drain()
	}

	if entry, ok := components.Player.First(w); ok {
		x, y := spawnPoint(level)
		components.Player.SetValue(entry, NewPlayerData(x, y))
		components.Boundaries.SetValue(entry, components.BoundariesData{})
		components.Object.Get(entry).MoveTo(x, y)

		anim, err := GenerateAnimations(cfg.SpritePlayer, cfg.Idle)
		if err != nil {
			return err
		}
		components.Animation.Set(entry, anim)
	}

	return spawnMapEntities(w, level)
}

func spawnMapEntities(w donburi.World, level *assets.Level) error {
	for _, spawn := range level.Data.Items {
		if _, err := CreateItem(w, spawn); err != nil {
			return fmt.Errorf("level %s: item: %w", level.Name, err)
		}
	}
	for _, spawn := range level.Data.Enemies {
		if _, err := CreateEnemy(w, spawn); err != nil {
			return fmt.Errorf("level %s: enemy: %w", level.Name, err)
		}
	}
	return nil
}

func spawnPoint(level *assets.Level) (int, int) {
	if sp := level.Data.PlayerSpawn; sp != nil {
		return int(sp.X), int(sp.Y)
	}
	return cfg.Player.SpawnX, cfg.Player.SpawnY
}
