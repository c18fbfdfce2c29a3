package systems

import (
	"math"

	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/automoto/pixelrunner/shared/terrain"
	"github.com/yohamta/donburi"
)

// UpdatePlayerPhysics integrates the player against the boundaries computed
// at the start of the tick.
func UpdatePlayerPhysics(w donburi.World, dt float64) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	bounds := components.Boundaries.Get(playerEntry)

	jumped := ApplyPlayerPhysics(player, bounds, mapData(w).Mask, dt)
	if jumped {
		PlaySound(w, cfg.SoundJump)
	}

	components.Object.Get(playerEntry).MoveTo(player.X, player.Y)
}

// ApplyPlayerPhysics advances the player's velocity and position by dt tick
// units. Vertical motion is resolved first; the horizontal boundaries are then
// rescanned at the new height before the horizontal displacement is clamped.
// Returns true when a jump started this tick.
func ApplyPlayerPhysics(p *components.PlayerData, b *components.BoundariesData, mask *terrain.Mask, dt float64) bool {
	if dt < 1 {
		dt = 1
	}

	if p.HitTimer > 0 {
		p.HitTimer--
		if p.HitTimer == 0 {
			p.Colliding = false
		}
	}

	// Horizontal speed
	if p.Moving {
		p.VX = math.Min(math.Max(p.VX, cfg.Player.StartSpeed)*cfg.Player.Acceleration*cfg.Player.Friction, cfg.Player.MaxSpeed)
	} else {
		p.VX = gamemath.Decelerate(p.VX, cfg.Player.Deceleration)
	}

	// Jump requests are consumed whether or not they start a jump
	jumped := false
	if p.JumpRequested {
		p.JumpRequested = false
		if !p.Jumping && p.Y >= b.Bottom {
			p.Jumping = true
			p.JumpReached = false
			p.JumpAnchor = b.Bottom - cfg.Player.JumpDistance
			p.VY = cfg.Player.InitialJumpSpeed
			p.FallSpeed = 0
			jumped = true
		}
	}

	y := p.Y
	switch {
	case p.Jumping:
		p.VY = math.Min(p.VY+p.VY*cfg.Player.JumpEase, cfg.Player.MaxJumpSpeed)
		y -= int(math.Round(p.VY * dt))
		limit := max(p.JumpAnchor, b.Top+1)
		if y <= limit {
			y = limit
			endJump(p)
		}
	case y < b.Bottom:
		p.FallSpeed = math.Min(p.FallSpeed+cfg.Player.Gravity*dt, cfg.Player.MaxFallSpeed)
		y += int(math.Round(p.FallSpeed * dt))
		if y >= b.Bottom {
			p.FallSpeed = 0
		}
	default:
		p.FallSpeed = 0
	}
	p.Y = gamemath.Clamp(y, b.Top+1, b.Bottom)

	// The vertical move may have changed which columns are clear
	RecomputeXBoundaries(mask, p, b)

	dx := int(math.Round(p.VX*dt)) * p.Direction
	x := gamemath.Clamp(p.X+dx, b.Left+1, b.Right-1)
	if x != p.X+dx {
		p.VX = 0
	}
	p.X = x

	return jumped
}

func endJump(p *components.PlayerData) {
	p.Jumping = false
	p.JumpAnchor = 0
	p.VY = 0
	p.JumpReached = true
}

// Knockback pushes the player away from the direction it faces and starts the
// hit reaction. The move is clamped to the camera window and the horizontal
// boundaries. Returns false if the player is still recovering from a hit.
func Knockback(p *components.PlayerData, b *components.BoundariesData, cam *components.CameraData) bool {
	if p.HitTimer > 0 {
		return false
	}

	lo := max(b.Left+1, cam.X)
	hi := min(b.Right-1, cam.X+cam.Width-p.Width)
	p.X = gamemath.Clamp(p.X-p.Direction*cfg.Player.KnockbackDistance, lo, hi)
	p.VX = 0
	p.Colliding = true
	p.HitTimer = cfg.Player.HitFrames
	return true
}
