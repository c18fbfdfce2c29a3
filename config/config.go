package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Spawn point used when a level does not define one
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`

	// Horizontal movement
	StartSpeed   float64 `yaml:"start_speed"`  // Speed the first moving tick accelerates from
	Acceleration float64 `yaml:"acceleration"` // Geometric multiplier applied while moving
	Friction     float64 `yaml:"friction"`     // Damping factor applied every moving tick
	MaxSpeed     float64 `yaml:"max_speed"`
	Deceleration float64 `yaml:"deceleration"` // Linear decay per tick while not moving

	// Jump
	JumpDistance     int     `yaml:"jump_distance"` // Height of the jump anchor above the floor
	InitialJumpSpeed float64 `yaml:"initial_jump_speed"`
	JumpEase         float64 `yaml:"jump_ease"` // vy grows by JumpEase*vy every rising tick
	MaxJumpSpeed     float64 `yaml:"max_jump_speed"`

	// Falling
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`

	// Hit reaction
	KnockbackDistance int `yaml:"knockback_distance"`
	HitFrames         int `yaml:"hit_frames"` // Ticks the hit reaction lasts
}

// EnemyKind is the behavior variant of a map enemy.
type EnemyKind int

const (
	EnemyBlocker EnemyKind = iota
	EnemyRunner
	EnemyShooter
)

var enemyKindNames = map[string]EnemyKind{
	"blocker": EnemyBlocker,
	"runner":  EnemyRunner,
	"shooter": EnemyShooter,
}

// ParseEnemyKind maps a configuration type tag to an EnemyKind.
func ParseEnemyKind(tag string) (EnemyKind, bool) {
	k, ok := enemyKindNames[tag]
	return k, ok
}

func (k EnemyKind) String() string {
	for name, kind := range enemyKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// ItemKind is the type of a map item.
type ItemKind int

const (
	ItemCollectable ItemKind = iota
	ItemFinish
)

// ParseItemKind maps a configuration type tag to an ItemKind.
func ParseItemKind(tag string) (ItemKind, bool) {
	switch tag {
	case "collectable":
		return ItemCollectable, true
	case "finish":
		return ItemFinish, true
	}
	return 0, false
}

func (k ItemKind) String() string {
	switch k {
	case ItemCollectable:
		return "collectable"
	case ItemFinish:
		return "finish"
	}
	return "unknown"
}

// EnemyTypeConfig contains configuration for a specific enemy kind
type EnemyTypeConfig struct {
	SpriteKey string `yaml:"sprite_key"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Step      int    `yaml:"step"` // Pixels moved per tick while active

	// Blocker
	PatrolDistance int `yaml:"patrol_distance"` // Half-width of the patrol around the origin

	// Runner and Shooter
	ActivationRange   int `yaml:"activation_range"`   // Horizontal proximity threshold
	VerticalTolerance int `yaml:"vertical_tolerance"` // Runner: allowed offset from the spawn row

	// Shooter
	FireInterval    int     `yaml:"fire_interval"` // Ticks between shots
	MaxProjectiles  int     `yaml:"max_projectiles"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`

	HitFrames int `yaml:"hit_frames"` // Ticks the hit reaction animation lasts
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[EnemyKind]EnemyTypeConfig `yaml:"-"`
}

// ItemConfig contains map item configuration
type ItemConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	DeactivateFrames int     `yaml:"deactivate_frames"` // Length of the pickup animation
	DeactivateRise   float64 `yaml:"deactivate_rise"`   // Pixels an item floats up while deactivating
}

// BurstConfig contains collision burst particle configuration
type BurstConfig struct {
	Count      int     `yaml:"count"`
	RadiusStep float64 `yaml:"radius_step"`
	MaxRadius  float64 `yaml:"max_radius"`
	Gravity    float64 `yaml:"gravity"`
	Lifetime   int     `yaml:"lifetime"`
	Size       int     `yaml:"size"`
	Color      color.RGBA
}

// DustConfig contains dust trail particle configuration
type DustConfig struct {
	Lifetime      int     `yaml:"lifetime"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between dust puffs while running
	StartSize     float64 `yaml:"start_size"`
	EndSize       float64 `yaml:"end_size"`
	Color         color.RGBA
}

// ProjectileConfig contains projectile particle configuration
type ProjectileConfig struct {
	Lifetime int `yaml:"lifetime"`
	Size     int `yaml:"size"`
	Jitter   int `yaml:"jitter"` // Max random offset per tick in pixels
	Color    color.RGBA
}

// ParticleConfig groups all particle kinds
type ParticleConfig struct {
	Burst      BurstConfig      `yaml:"burst"`
	Dust       DustConfig       `yaml:"dust"`
	Projectile ProjectileConfig `yaml:"projectile"`
}

// CameraConfig contains viewport configuration
type CameraConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TerrainConfig contains terrain mask configuration
type TerrainConfig struct {
	SolidColor color.RGBA `yaml:"-"` // Reference color that marks impassable pixels
	CellSize   int        `yaml:"cell_size"`
}

// SessionConfig contains tick cadence configuration
type SessionConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`   // Nominal frame duration
	MaxDeltaTicks float64       `yaml:"max_delta_ticks"` // Upper clamp for deltaTime
	Seed          uint64        `yaml:"seed"`            // RNG seed for particle jitter
}

// Global configuration instances
var Player PlayerConfig
var Enemy EnemyConfig
var Item ItemConfig
var Particle ParticleConfig
var Camera CameraConfig
var Terrain TerrainConfig
var Session SessionConfig

// Shared RGBA color constants
var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Sand   = color.RGBA{R: 194, G: 178, B: 128, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

func init() {
	Player = PlayerConfig{
		Width:  32,
		Height: 48,
		SpawnX: 64,
		SpawnY: 400,

		StartSpeed:   1.0,
		Acceleration: 1.3,
		Friction:     0.95,
		MaxSpeed:     8.0,
		Deceleration: 1.0,

		JumpDistance:     150,
		InitialJumpSpeed: 4.0,
		JumpEase:         0.15,
		MaxJumpSpeed:     14.0,

		Gravity:      1.0,
		MaxFallSpeed: 12.0,

		KnockbackDistance: 40,
		HitFrames:         12,
	}

	Enemy = EnemyConfig{
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyBlocker: {
				SpriteKey:      "blocker",
				Width:          40,
				Height:         40,
				Step:           2,
				PatrolDistance: 100,
				HitFrames:      10,
			},
			EnemyRunner: {
				SpriteKey:         "runner",
				Width:             36,
				Height:            36,
				Step:              4,
				ActivationRange:   300,
				VerticalTolerance: 8,
				HitFrames:         10,
			},
			EnemyShooter: {
				SpriteKey:       "shooter",
				Width:           40,
				Height:          48,
				ActivationRange: 200,
				FireInterval:    25,
				MaxProjectiles:  3,
				ProjectileSpeed: 5.0,
				HitFrames:       10,
			},
		},
	}

	Item = ItemConfig{
		Width:            32,
		Height:           32,
		DeactivateFrames: 6,
		DeactivateRise:   16,
	}

	Particle = ParticleConfig{
		Burst: BurstConfig{
			Count:      8,
			RadiusStep: 3,
			MaxRadius:  30,
			Gravity:    0.8,
			Lifetime:   24,
			Size:       4,
			Color:      Orange,
		},
		Dust: DustConfig{
			Lifetime:      8,
			SpawnInterval: 4,
			StartSize:     2,
			EndSize:       8,
			Color:         Sand,
		},
		Projectile: ProjectileConfig{
			Lifetime: 60,
			Size:     8,
			Jitter:   1,
			Color:    Red,
		},
	}

	Camera = CameraConfig{
		Width:  800,
		Height: 600,
	}

	Terrain = TerrainConfig{
		SolidColor: Black,
		CellSize:   32,
	}

	Session = SessionConfig{
		TickInterval:  80 * time.Millisecond,
		MaxDeltaTicks: 3,
		Seed:          1,
	}
}
