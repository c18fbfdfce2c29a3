package animations

import (
	"errors"
	"fmt"

	"github.com/automoto/pixelrunner/config"
)

// ErrMissingFrame signals a malformed animation table: a state or frame that
// an entity can reach has no sprite sheet cell.
var ErrMissingFrame = errors.New("missing animation frame")

// Cell is a sprite sheet offset rectangle.
type Cell struct {
	X, Y int
	W, H int
}

// FrameMetadata is the frame an entity currently shows.
type FrameMetadata struct {
	State config.StateID
	Frame int // 1-based
	Cell  Cell
}

// Animation counts ticks through the frames of one state. After the last
// frame it wraps back to frame 1 and sets Looped.
type Animation struct {
	Frames  int // frames in the row, frame numbers run 1..Frames
	Speed   int // ticks per frame
	counter int
	frame   int
	Looped  bool
}

func (a *Animation) Update() {
	a.counter++
	if a.counter < a.Speed {
		return
	}
	a.counter = 0
	a.frame++
	if a.frame > a.Frames {
		a.Looped = true
		a.frame = 1
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 1
	a.counter = 0
	a.Looped = false
}

func NewAnimation(frames, speed int) *Animation {
	if speed < 1 {
		speed = 1
	}
	return &Animation{
		Frames: frames,
		Speed:  speed,
		frame:  1,
	}
}

// Table resolves states and frames of one sprite sheet.
type Table struct {
	key  string
	defs map[config.StateID]config.AnimationDef
}

// NewTable looks up the frame table registered for a sprite key.
func NewTable(key string) (*Table, error) {
	defs, ok := config.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("sprite %q: %w", key, ErrMissingFrame)
	}
	return &Table{key: key, defs: defs}, nil
}

// Key returns the sprite key of the table.
func (t *Table) Key() string {
	return t.key
}

// Def returns the animation definition of a state.
func (t *Table) Def(state config.StateID) (config.AnimationDef, error) {
	def, ok := t.defs[state]
	if !ok || def.Frames < 1 {
		return config.AnimationDef{}, fmt.Errorf("sprite %q state %s: %w", t.key, state, ErrMissingFrame)
	}
	return def, nil
}

// Cell returns the sprite sheet rectangle for a 1-based frame of a state.
func (t *Table) Cell(state config.StateID, frame int) (Cell, error) {
	def, err := t.Def(state)
	if err != nil {
		return Cell{}, err
	}
	if frame < 1 || frame > def.Frames {
		return Cell{}, fmt.Errorf("sprite %q state %s frame %d: %w", t.key, state, frame, ErrMissingFrame)
	}
	return Cell{
		X: (frame - 1) * def.Width,
		Y: def.Row * def.Height,
		W: def.Width,
		H: def.Height,
	}, nil
}

// Metadata resolves the FrameMetadata of a state and frame.
func (t *Table) Metadata(state config.StateID, frame int) (FrameMetadata, error) {
	cell, err := t.Cell(state, frame)
	if err != nil {
		return FrameMetadata{}, err
	}
	return FrameMetadata{State: state, Frame: frame, Cell: cell}, nil
}

// Validate checks that every listed state of a sprite has a usable frame table.
func Validate(key string, states []config.StateID) error {
	table, err := NewTable(key)
	if err != nil {
		return err
	}
	for _, s := range states {
		if _, err := table.Def(s); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll checks every sprite named in config.RequiredStates.
func ValidateAll() error {
	for key, states := range config.RequiredStates {
		if err := Validate(key, states); err != nil {
			return err
		}
	}
	return nil
}
