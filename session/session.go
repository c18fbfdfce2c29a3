// Package session owns one independent simulation instance: its world, the
// tick pipeline, player intent and lifecycle status.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/automoto/pixelrunner/assets"
	"github.com/automoto/pixelrunner/assets/animations"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/automoto/pixelrunner/shared/messages"
	"github.com/automoto/pixelrunner/systems"
	"github.com/automoto/pixelrunner/systems/factory"
	"github.com/yohamta/donburi"
)

var (
	ErrNotInitialized = errors.New("session not initialized")
	ErrTerminated     = errors.New("session terminated")
)

// Session is one player's simulation. Tick must be called from a single
// goroutine; HandleInput, Pause, Resume and Restart may be called from any.
type Session struct {
	level  *assets.Level
	world  donburi.World
	engine *systems.Engine
	intent intent
	status SessionStatus
	last   *Frame
}

// New builds a session for a level. Animation tables are validated first; any
// failure is returned wrapped in ErrNotInitialized and the session never ticks.
func New(level *assets.Level) (*Session, error) {
	if level == nil || level.Mask == nil || level.Data == nil {
		return nil, fmt.Errorf("%w: no level", ErrNotInitialized)
	}
	if err := animations.ValidateAll(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotInitialized, err)
	}

	world := donburi.NewWorld()
	if _, err := factory.PopulateLevel(world, level); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotInitialized, err)
	}

	s := &Session{
		level:  level,
		world:  world,
		engine: systems.NewEngine(world, cfg.Session.Seed),
	}
	s.intent.reset()
	s.status.Initialized = true
	return s, nil
}

// Status returns the session's lifecycle status.
func (s *Session) Status() *SessionStatus {
	return &s.status
}

// Level returns the level the session plays.
func (s *Session) Level() *assets.Level {
	return s.level
}

// Score returns a read-only view of the collectable counts. Call it from the
// tick goroutine.
func (s *Session) Score() ScoreService {
	return ScoreService{world: s.world}
}

// HandleInput records a start or stop of an action. It only touches intent.
func (s *Session) HandleInput(typ cfg.InputType, action cfg.ActionID) {
	s.intent.apply(typ, action)
}

// HandleEvent parses a wire input event and applies it.
func (s *Session) HandleEvent(ev messages.InputEvent) error {
	typ, ok := cfg.ParseInputType(ev.Type)
	if !ok {
		return fmt.Errorf("unknown input type %q", ev.Type)
	}
	action, ok := cfg.ParseAction(ev.Action)
	if !ok {
		return fmt.Errorf("unknown action %q", ev.Action)
	}
	s.HandleInput(typ, action)
	return nil
}

// HandleControl applies a pause, resume or restart command.
func (s *Session) HandleControl(ctrl messages.SessionControl) error {
	switch ctrl.Command {
	case messages.CommandPause:
		s.Pause()
	case messages.CommandResume:
		s.Resume()
	case messages.CommandRestart:
		s.Restart()
	default:
		return fmt.Errorf("unknown session command %q", ctrl.Command)
	}
	return nil
}

func (s *Session) Pause()  { s.status.Pause() }
func (s *Session) Resume() { s.status.Resume() }

// Restart asks for the level to be reset at the start of the next tick.
func (s *Session) Restart() {
	s.intent.restart.Store(true)
}

// Tick advances the simulation by one step and returns the resulting frame.
// A paused session returns its previous frame unchanged. A fatal error
// terminates the session: no frame is produced and later ticks return
// ErrTerminated.
func (s *Session) Tick(now time.Time) (*Frame, error) {
	if s == nil || !s.status.Initialized {
		return nil, ErrNotInitialized
	}
	if s.status.Terminated {
		return nil, ErrTerminated
	}

	if s.intent.restart.Swap(false) {
		if err := s.reset(); err != nil {
			return nil, s.terminate(err)
		}
	}

	if s.status.Paused() {
		s.status.LastTick = now
		if s.last == nil {
			s.last = buildFrame(s.world, s.status.Ticks)
		}
		f := *s.last
		f.Paused = true
		f.Sounds = nil
		return &f, nil
	}

	dt := 1.0
	if !s.status.LastTick.IsZero() {
		dt = gamemath.DeltaTicks(now.Sub(s.status.LastTick), cfg.Session.TickInterval, cfg.Session.MaxDeltaTicks)
	}
	s.status.LastTick = now

	if entry, ok := components.Player.First(s.world); ok {
		s.intent.consume(components.Player.Get(entry))
	}

	if err := s.engine.Step(dt); err != nil {
		return nil, s.terminate(err)
	}
	s.status.Ticks++

	f := buildFrame(s.world, s.status.Ticks)
	f.Sounds = systems.DrainSounds(s.world)
	s.last = f
	return f, nil
}

// TickAndRender runs Tick and hands the frame to r.
func (s *Session) TickAndRender(now time.Time, r Renderer) error {
	f, err := s.Tick(now)
	if err != nil {
		return err
	}
	return r.Render(f)
}

func (s *Session) reset() error {
	s.intent.reset()
	s.status.LastTick = time.Time{}
	s.status.Ticks = 0
	s.last = nil
	return factory.ResetLevel(s.world, s.level)
}

func (s *Session) terminate(err error) error {
	s.status.Terminated = true
	s.status.Err = err
	return fmt.Errorf("%w: %w", ErrTerminated, err)
}
