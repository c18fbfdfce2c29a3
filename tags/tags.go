package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Item       = donburi.NewTag().SetName("Item")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Particle   = donburi.NewTag().SetName("Particle")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for broad-phase collision
const (
	ResolvPlayer     = "Player"
	ResolvItem       = "Item"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
