package tunnel

import "github.com/vovakirdan/tui-tunnel/internal/core"

// Input is a discrete event delivered to a session.
type Input int

const (
	// InputPress is the single overloaded signal (space, click): it starts a
	// run that has not started and jumps during a run.
	InputPress Input = iota
	InputStart
	InputJump
	InputRestart
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputPress:
		return "Press"
	case InputStart:
		return "Start"
	case InputJump:
		return "Jump"
	case InputRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

type transitionKey struct {
	from core.Phase
	in   Input
}

// transitions lists every input a phase reacts to. Anything missing is ignored:
// a running game cannot go back to NotStarted, and only Restart leaves GameOver.
var transitions = map[transitionKey]func(*Session){
	{core.PhaseNotStarted, InputPress}: (*Session).start,
	{core.PhaseNotStarted, InputStart}: (*Session).start,
	{core.PhaseRunning, InputPress}:    (*Session).jump,
	{core.PhaseRunning, InputJump}:     (*Session).jump,
	{core.PhaseGameOver, InputRestart}: (*Session).restart,
}

// Handle applies an input according to the transition table.
// It reports whether the input had any effect.
func (s *Session) Handle(in Input) bool {
	if !s.ready {
		return false
	}
	apply, ok := transitions[transitionKey{from: s.phase, in: in}]
	if !ok {
		return false
	}
	apply(s)
	return true
}

// Press delivers the overloaded start/jump signal.
func (s *Session) Press() bool { return s.Handle(InputPress) }

// Start begins a run that has not started yet.
func (s *Session) Start() bool { return s.Handle(InputStart) }

// Jump sets the player's vertical speed to the jump speed during a run.
func (s *Session) Jump() bool { return s.Handle(InputJump) }

// Restart reinitializes a finished run.
func (s *Session) Restart() bool { return s.Handle(InputRestart) }

func (s *Session) start() {
	s.phase = core.PhaseRunning
}

// jump overwrites the vertical speed; two jumps before a tick equal one.
func (s *Session) jump() {
	s.world.Player.VerticalSpeed = s.cfg.Physics.Jump
}

func (s *Session) restart() {
	s.init()
}
