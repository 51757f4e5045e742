package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFlap) {
		t.Error("zero frame should not report any action")
	}

	f.Set(ActionFlap)
	f.Set(ActionFlap)
	if !f.Has(ActionFlap) {
		t.Error("Flap should be set")
	}
	if f.Has(ActionRestart) {
		t.Error("Restart should not be set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFlap) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionFlap) {
		t.Error("Clone should be independent of the original frame")
	}
}

func TestInputFrameIgnoresNone(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	if !f.Empty() || f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Set(ActionQuit)
	f.Set(ActionPause)
	if f.Empty() || !f.Has(ActionQuit) || !f.Has(ActionPause) || f.Has(ActionBack) {
		t.Errorf("Frame = %+v, want Quit and Pause only", f)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionFlap:    "Flap",
		ActionRestart: "Restart",
		ActionPause:   "Pause",
		ActionBack:    "Back",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
