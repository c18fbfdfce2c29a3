// Package leveldata provides TMX level parsing for the asset provider.
// It has no dependencies on donburi or resolv, only plain data.
package leveldata

import "github.com/automoto/pixelrunner/config"

// MapData holds the positional metadata of a level: its size, the terrain
// image that backs the collision mask, and entity spawns with their type tags.
type MapData struct {
	Name         string
	Width        int // map width in pixels
	Height       int // map height in pixels
	TerrainImage string
	PlayerSpawn  *SpawnPoint
	Items        []ItemSpawn
	Enemies      []EnemySpawn
}

// SpawnPoint represents the player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// ItemSpawn represents a collectable or finish item.
type ItemSpawn struct {
	X, Y float64
	Kind config.ItemKind
}

// EnemySpawn represents an enemy and its patrol origin.
type EnemySpawn struct {
	X, Y   float64
	Kind   config.EnemyKind
	Patrol int // optional patrol distance override, 0 = type default
}

// Collectables returns the number of collectable items in the level.
func (m *MapData) Collectables() int {
	n := 0
	for _, it := range m.Items {
		if it.Kind == config.ItemCollectable {
			n++
		}
	}
	return n
}
