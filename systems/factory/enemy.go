package factory

import (
	"fmt"

	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/leveldata"
	"github.com/automoto/pixelrunner/tags"
	"github.com/yohamta/donburi"
)

// CreateEnemy spawns an enemy at its patrol origin. Blockers are always
// Active; Runners and Shooters wait Inactive for the player to come close.
func CreateEnemy(w donburi.World, spawn leveldata.EnemySpawn) (*donburi.Entry, error) {
	enemyType, exists := cfg.Enemy.Types[spawn.Kind]
	if !exists {
		return nil, fmt.Errorf("enemy kind %s has no type config", spawn.Kind)
	}

	state, anim := cfg.Inactive, cfg.Idle
	if spawn.Kind == cfg.EnemyBlocker {
		state, anim = cfg.Active, cfg.Patrol
	}

	animData, err := GenerateAnimations(enemyType.SpriteKey, anim)
	if err != nil {
		return nil, err
	}

	patrol := enemyType.PatrolDistance
	if spawn.Patrol > 0 {
		patrol = spawn.Patrol
	}

	x, y := int(spawn.X), int(spawn.Y)
	enemy := archetypes.Enemy.Spawn(w)
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:           spawn.Kind,
		TypeConfig:     &enemyType,
		X:              x,
		Y:              y,
		OriginX:        x,
		OriginY:        y,
		PrevX:          x,
		Direction:      cfg.DirectionRight,
		PatrolDistance: patrol,
		State:          state,
		AnimState:      anim,
	})
	components.Animation.Set(enemy, animData)
	newObject(w, enemy, x, y, enemyType.Width, enemyType.Height, tags.ResolvEnemy)

	return enemy, nil
}
