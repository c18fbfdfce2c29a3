package config

// AnimationDef describes one row of a sprite sheet. Frames are 1-based and a
// state's animation wraps back to frame 1 after its last frame.
type AnimationDef struct {
	Frames int // number of frames in the row
	Row    int // sprite sheet row
	Width  int // cell width in pixels
	Height int // cell height in pixels
	Speed  int // ticks per frame
}

// Sprite sheet keys
const (
	SpritePlayer      = "player"
	SpriteBlocker     = "blocker"
	SpriteRunner      = "runner"
	SpriteShooter     = "shooter"
	SpriteCollectable = "collectable"
	SpriteFinish      = "finish"
)

// CharacterAnimations maps a sprite key (e.g., "player") to its specific set
// of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	SpritePlayer: {
		Idle:    {Frames: 4, Row: 0, Width: 32, Height: 48, Speed: 3},
		Running: {Frames: 6, Row: 1, Width: 32, Height: 48, Speed: 1},
		Jump:    {Frames: 2, Row: 2, Width: 32, Height: 48, Speed: 2},
		Fall:    {Frames: 2, Row: 3, Width: 32, Height: 48, Speed: 2},
		Hit:     {Frames: 4, Row: 4, Width: 32, Height: 48, Speed: 1},
	},
	SpriteBlocker: {
		Patrol: {Frames: 4, Row: 0, Width: 40, Height: 40, Speed: 2},
		Hit:    {Frames: 5, Row: 1, Width: 40, Height: 40, Speed: 1},
	},
	SpriteRunner: {
		Idle:   {Frames: 2, Row: 0, Width: 36, Height: 36, Speed: 4},
		Charge: {Frames: 6, Row: 1, Width: 36, Height: 36, Speed: 1},
		Hit:    {Frames: 4, Row: 2, Width: 36, Height: 36, Speed: 1},
	},
	SpriteShooter: {
		Idle:   {Frames: 2, Row: 0, Width: 40, Height: 48, Speed: 4},
		Firing: {Frames: 5, Row: 1, Width: 40, Height: 48, Speed: 2},
		Hit:    {Frames: 4, Row: 2, Width: 40, Height: 48, Speed: 1},
	},
	SpriteCollectable: {
		ItemIdle:    {Frames: 8, Row: 0, Width: 32, Height: 32, Speed: 1},
		ItemCollect: {Frames: 6, Row: 1, Width: 32, Height: 32, Speed: 1},
	},
	SpriteFinish: {
		FinishIdle: {Frames: 1, Row: 0, Width: 32, Height: 32, Speed: 1},
		FinishOpen: {Frames: 4, Row: 1, Width: 32, Height: 32, Speed: 2},
	},
}

// RequiredStates lists every state each sprite can enter during a session.
// Session initialization fails if any of them has no frame table.
var RequiredStates = map[string][]StateID{
	SpritePlayer:      {Idle, Running, Jump, Fall, Hit},
	SpriteBlocker:     {Patrol, Hit},
	SpriteRunner:      {Idle, Charge, Hit},
	SpriteShooter:     {Idle, Firing, Hit},
	SpriteCollectable: {ItemIdle, ItemCollect},
	SpriteFinish:      {FinishIdle, FinishOpen},
}
