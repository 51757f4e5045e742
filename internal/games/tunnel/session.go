// Package tunnel implements a side-scrolling obstacle game: the player
// falls under gravity, jumps on input, and must pass through the gaps of
// pillar pairs that scroll in from the right.
//
// The simulation runs in world space, the square [-1, 1] x [-1, 1] with y
// pointing up. A Session owns a fixed pool of entities and a state machine;
// a host drives it once per rendered frame and delivers input events to it.
package tunnel

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tunnel/internal/config"
	"github.com/vovakirdan/tui-tunnel/internal/core"
)

// Outcome reports what happened during one tick.
type Outcome struct {
	Recycled        int  // Pairs that left the field and were respawned
	Collided        bool // The collision check was positive
	EnteredGameOver bool // This tick ended the run
}

// Session is one game: the entity pool, the score, the phase and the clock.
// It is not safe for concurrent use; the host serializes input and ticks.
type Session struct {
	cfg        config.TunnelConfig
	difficulty *config.DifficultyManager
	ring       *Ring
	world      World

	phase core.Phase
	score int
	ticks int
	ready bool

	clock core.Clock
	last  time.Time

	onGameOver func(score int)

	pillarQuad [4]Vec2
	playerQuad [4]Vec2
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the time source Frame samples. The default is a StepClock at 60 Hz.
func WithClock(c core.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithGameOverHook registers fn to run once each time a run ends.
func WithGameOverHook(fn func(score int)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// Deferred creates the session in the not-ready state. It refuses input and
// ticks until MarkReady is called, for hosts whose renderer is set up later.
func Deferred() Option {
	return func(s *Session) {
		s.ready = false
	}
}

// NewSession validates cfg and builds a session in the NotStarted phase.
func NewSession(cfg config.TunnelConfig, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tunnel: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		ring:       NewRing(cfg.Track, seed),
		world:      NewWorld(cfg.Track.Pairs),
		ready:      true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = core.NewStepClock(60)
	}
	s.last = s.clock.Now()

	s.pillarQuad = quad(cfg.Track.HalfWidth)
	s.playerQuad = quad(cfg.Player.HalfSize)

	s.init()
	return s, nil
}

// init resets score, phase and every entity in place.
func (s *Session) init() {
	s.score = 0
	s.ticks = 0
	s.phase = core.PhaseNotStarted
	s.ring.Line(s.world.Pairs)
	s.world.Player.reset()
}

// MarkReady lets a deferred session accept input and ticks.
func (s *Session) MarkReady() {
	s.ready = true
}

// Ready reports whether the session accepts input and ticks.
func (s *Session) Ready() bool {
	return s.ready
}

// Resample reads the clock without simulating, so time spent paused or
// waiting does not turn into one large step later.
func (s *Session) Resample() {
	s.last = s.clock.Now()
}

// Frame samples the clock once and ticks by the time since the previous sample.
// The sample is taken in every phase; only a running session moves.
func (s *Session) Frame() Outcome {
	now := s.clock.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	return s.Tick(elapsed)
}

// Tick advances a running session: integrate, recycle, then check collisions.
// Outside the Running phase, or before the session is ready, it does nothing.
func (s *Session) Tick(elapsed time.Duration) Outcome {
	var out Outcome
	if !s.ready || s.phase != core.PhaseRunning {
		return out
	}

	dt := elapsed.Seconds()
	if dt < 0 {
		dt = 0
	}
	s.ticks++

	Integrate(&s.world, s.physics(), dt)

	for i := range s.world.Pairs {
		if s.ring.MaybeRecycle(&s.world.Pairs[i]) {
			s.score++
			out.Recycled++
		}
	}

	if Check(&s.world, s.Geometry()) {
		out.Collided = true
		out.EnteredGameOver = s.endRun()
	}
	return out
}

// endRun moves a running session to GameOver and fires the hook.
// It reports false if the run had already ended.
func (s *Session) endRun() bool {
	if s.phase != core.PhaseRunning {
		return false
	}
	s.phase = core.PhaseGameOver
	if s.onGameOver != nil {
		s.onGameOver(s.score)
	}
	return true
}

func (s *Session) physics() Physics {
	return Physics{
		Gravity:     s.cfg.Physics.Gravity,
		ScrollSpeed: s.difficulty.Speed(s.cfg.Physics.ScrollSpeed, s.score, s.ticks),
	}
}

// Geometry returns the sizes used for collision detection.
func (s *Session) Geometry() Geometry {
	return Geometry{
		TunnelGap:  s.cfg.Track.TunnelGap,
		HalfWidth:  s.cfg.Track.HalfWidth,
		PlayerHalf: s.cfg.Player.HalfSize,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() core.Phase {
	return s.phase
}

// Score returns the number of pairs recycled during the current run.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of simulated ticks in the current run.
func (s *Session) Ticks() int {
	return s.ticks
}

// World exposes the entity pool for rendering and inspection.
// Callers must treat it as read-only.
func (s *Session) World() *World {
	return &s.world
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.TunnelConfig {
	return s.cfg
}

// quad returns a square centred on the origin, wound for a triangle fan.
func quad(half float64) [4]Vec2 {
	return [4]Vec2{
		{X: half, Y: half},
		{X: -half, Y: half},
		{X: -half, Y: -half},
		{X: half, Y: -half},
	}
}
