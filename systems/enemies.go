package systems

import (
	"math"

	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateEnemies applies each enemy kind's movement rule. Inactive enemies are
// never moved.
func UpdateEnemies(w donburi.World) {
	live := liveProjectiles(w)
	var shooters []*donburi.Entry

	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		enemy.PrevX = enemy.X

		if enemy.HitTimer > 0 {
			enemy.HitTimer--
			if enemy.HitTimer == 0 {
				enemy.Colliding = false
			}
		}
		if enemy.State != cfg.Active {
			return
		}

		switch enemy.Kind {
		case cfg.EnemyBlocker:
			updateBlocker(enemy)
		case cfg.EnemyRunner:
			updateRunner(enemy)
		case cfg.EnemyShooter:
			if shooterReady(enemy, live[entry.Entity()]) {
				shooters = append(shooters, entry)
			}
		}

		components.Object.Get(entry).MoveTo(enemy.X, enemy.Y)
	})

	// Spawned outside Each so the query is not modified while iterating
	for _, entry := range shooters {
		fire(w, entry)
	}
}

// updateBlocker patrols between origin-D and origin+D, holding still while
// its hit animation plays.
func updateBlocker(e *components.EnemyData) {
	if e.Colliding {
		return
	}
	lo, hi := e.OriginX-e.PatrolDistance, e.OriginX+e.PatrolDistance
	e.X += e.Direction * e.TypeConfig.Step
	if e.X >= hi {
		e.X = hi
		e.Direction = cfg.DirectionLeft
	} else if e.X <= lo {
		e.X = lo
		e.Direction = cfg.DirectionRight
	}
}

// updateRunner charges toward x=0 and retires for good once it gets there.
func updateRunner(e *components.EnemyData) {
	e.Direction = cfg.DirectionLeft
	e.X -= e.TypeConfig.Step
	if e.X <= 0 {
		e.X = 0
		e.State = cfg.Inactive
		e.Finished = true
		e.Interacting = false
	}
}

// shooterReady counts down the fire interval. A shooter fires once the
// interval elapses and fewer than MaxProjectiles of its shots are alive.
func shooterReady(e *components.EnemyData, live int) bool {
	if e.FireTimer > 0 {
		e.FireTimer--
		return false
	}
	return live < e.TypeConfig.MaxProjectiles
}

// fire launches a projectile at the player's last known position.
func fire(w donburi.World, entry *donburi.Entry) {
	e := components.Enemy.Get(entry)
	cx, cy := e.Rect().Center()
	size := float64(cfg.Particle.Projectile.Size)
	e.FireTimer = e.TypeConfig.FireInterval
	factory.CreateProjectile(w, entry.Entity(),
		cx-size/2, cy-size/2,
		float64(e.TargetX)-size/2, float64(e.TargetY)-size/2,
		e.TypeConfig.ProjectileSpeed)
}

func liveProjectiles(w donburi.World) map[donburi.Entity]int {
	live := make(map[donburi.Entity]int)
	components.Particle.Each(w, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		if p.Kind == components.ParticleProjectile && !p.Expired() {
			live[p.Owner]++
		}
	})
	return live
}

// UpdateProximity evaluates the activation rules of proximity-driven enemies
// against the player's current position.
func UpdateProximity(w donburi.World) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		switch enemy.Kind {
		case cfg.EnemyRunner:
			if enemy.State == cfg.Inactive && RunnerTriggered(enemy, player) {
				enemy.State = cfg.Active
				enemy.Interacting = true
			}
		case cfg.EnemyShooter:
			enemy.Interacting = ShooterTriggered(enemy, player)
			if enemy.Interacting {
				enemy.State = cfg.Active
				px, py := player.Rect().Center()
				enemy.TargetX, enemy.TargetY = int(px), int(py)
			} else {
				enemy.State = cfg.Inactive
			}
		}
	})
}

// RunnerTriggered reports whether the player is within horizontal range, its
// feet are level with the runner's spawn row and the runner still has path
// left to run.
func RunnerTriggered(e *components.EnemyData, p *components.PlayerData) bool {
	if e.Finished || e.X <= 0 {
		return false
	}
	if horizontalDistance(e, p) > float64(e.TypeConfig.ActivationRange) {
		return false
	}
	spawnFeet := e.OriginY + e.TypeConfig.Height
	playerFeet := p.Y + p.Height
	return abs(playerFeet-spawnFeet) <= e.TypeConfig.VerticalTolerance
}

// ShooterTriggered reports whether the player is within the shooter's
// horizontal range. Height is ignored.
func ShooterTriggered(e *components.EnemyData, p *components.PlayerData) bool {
	return horizontalDistance(e, p) <= float64(e.TypeConfig.ActivationRange)
}

func horizontalDistance(e *components.EnemyData, p *components.PlayerData) float64 {
	ex, _ := e.Rect().Center()
	px, _ := p.Rect().Center()
	return math.Abs(ex - px)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
