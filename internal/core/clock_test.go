package core

import (
	"testing"
	"time"
)

func TestStepClockAdvancesPerSample(t *testing.T) {
	c := NewStepClock(50)

	first := c.Now()
	second := c.Now()
	if got := second.Sub(first); got != 20*time.Millisecond {
		t.Errorf("step = %v, expected 20ms", got)
	}
	if c.Step() != 20*time.Millisecond {
		t.Errorf("Step() = %v, expected 20ms", c.Step())
	}
}

func TestStepClockDefaultRate(t *testing.T) {
	c := NewStepClock(0)
	if c.Step() != time.Second/60 {
		t.Errorf("Step() = %v, expected 1/60s", c.Step())
	}
}

func TestRuntimeConfigFrameClock(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.FrameClock().(*StepClock); !ok {
		t.Error("nil Clock should fall back to a StepClock")
	}

	cfg.Clock = SystemClock{}
	if _, ok := cfg.FrameClock().(SystemClock); !ok {
		t.Error("configured Clock should be returned as is")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRunning.String() != "Running" {
		t.Errorf("PhaseRunning.String() = %q", PhaseRunning.String())
	}
	if !(GameState{Phase: PhaseGameOver}).GameOver() {
		t.Error("GameOver() should be true in PhaseGameOver")
	}
	if (GameState{Phase: PhaseRunning}).GameOver() {
		t.Error("GameOver() should be false in PhaseRunning")
	}
}
