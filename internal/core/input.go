package core

// Action is a semantic input, decoupled from the key or button behind it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionFlap           // start a run, or jump while running
	ActionRestart        // new run after game over
	ActionPause          // toggle pause while running
	ActionBack           // leave for the menu
	ActionQuit           // end the program or SSH session
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionFlap:    "Flap",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions seen during one tick. Repeats within a
// tick collapse. The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

func (a Action) bit() uint32 {
	if a == ActionNone || a >= 32 {
		return 0
	}
	return 1 << a
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has reports whether a was recorded.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Empty reports whether no action was recorded.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of f.
func (f InputFrame) Clone() InputFrame {
	return f
}
