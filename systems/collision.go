package systems

import (
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/systems/factory"
	"github.com/automoto/pixelrunner/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// ResolveCollisions runs the entity interaction stages in order: items, then
// enemies and proximity, then projectiles. A later stage sees the knockback
// an earlier one applied.
func ResolveCollisions(w donburi.World) error {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return nil
	}
	if err := ResolveItemCollisions(w, playerEntry); err != nil {
		return err
	}
	if err := ResolveEnemyCollisions(w, playerEntry); err != nil {
		return err
	}
	UpdateProximity(w)
	return ResolveProjectileCollisions(w, playerEntry)
}

// candidates returns the entries whose broad-phase objects share a space cell
// with the player and carry tag.
func candidates(playerEntry *donburi.Entry, tag string) []*donburi.Entry {
	obj := components.Object.Get(playerEntry)
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var out []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		if entry, ok := o.Data.(*donburi.Entry); ok && entry.Valid() {
			out = append(out, entry)
		}
	}
	return out
}

// ResolveItemCollisions picks up Active items the player touches. A
// collectable starts deactivating; an open Finish item completes the map.
func ResolveItemCollisions(w donburi.World, playerEntry *donburi.Entry) error {
	player := components.Player.Get(playerEntry)
	m := mapData(w)

	for _, entry := range candidates(playerEntry, tags.ResolvItem) {
		item := components.Item.Get(entry)
		if item.State != cfg.Active || !player.Rect().Overlaps(item.Rect()) {
			continue
		}

		switch item.Kind {
		case cfg.ItemCollectable:
			item.State = cfg.Deactivating
			item.Rise = gween.New(0, float32(cfg.Item.DeactivateRise), float32(cfg.Item.DeactivateFrames), ease.OutQuad)
			PlaySound(w, cfg.SoundCollect)
			if err := setAnimation(entry, cfg.ItemCollect); err != nil {
				return err
			}
		case cfg.ItemFinish:
			item.State = cfg.Inactive
			m.State = cfg.MapCompleted
			m.CompletedAt = m.Tick
			if err := setAnimation(entry, cfg.FinishIdle); err != nil {
				return err
			}
		}
	}
	return nil
}

// ResolveEnemyCollisions handles contact between the player and Active
// enemies.
func ResolveEnemyCollisions(w donburi.World, playerEntry *donburi.Entry) error {
	player := components.Player.Get(playerEntry)

	for _, entry := range candidates(playerEntry, tags.ResolvEnemy) {
		enemy := components.Enemy.Get(entry)
		if enemy.State != cfg.Active || !player.Rect().Overlaps(enemy.Rect()) {
			continue
		}
		hit, err := hitPlayer(w, playerEntry)
		if err != nil {
			return err
		}
		if !hit {
			continue
		}

		enemy.Colliding = true
		enemy.HitTimer = enemy.TypeConfig.HitFrames
		if err := setAnimation(entry, cfg.Hit); err != nil {
			return err
		}
	}
	return nil
}

// ResolveProjectileCollisions retires projectiles that touch the player and
// applies the same hit reaction as enemy contact.
func ResolveProjectileCollisions(w donburi.World, playerEntry *donburi.Entry) error {
	player := components.Player.Get(playerEntry)

	for _, entry := range candidates(playerEntry, tags.ResolvProjectile) {
		p := components.Particle.Get(entry)
		if p.Expired() || !player.Rect().Overlaps(p.Rect()) {
			continue
		}
		p.Frame = p.Lifetime + 1
		if _, err := hitPlayer(w, playerEntry); err != nil {
			return err
		}
	}
	return nil
}

// hitPlayer knocks the player back, bursts particles at its center and
// queues the collision sound. Returns false while the player is still
// recovering from an earlier hit.
func hitPlayer(w donburi.World, playerEntry *donburi.Entry) (bool, error) {
	player := components.Player.Get(playerEntry)
	cx, cy := player.Rect().Center()

	if !Knockback(player, components.Boundaries.Get(playerEntry), cameraData(w)) {
		return false, nil
	}
	components.Object.Get(playerEntry).MoveTo(player.X, player.Y)

	factory.CreateBurst(w, cx, cy)
	PlaySound(w, cfg.SoundCollision)

	player.State = cfg.Hit
	return true, setAnimation(playerEntry, cfg.Hit)
}
