package tunnel

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tunnel/internal/config"
	"github.com/vovakirdan/tui-tunnel/internal/core"
)

const eps = 1e-9

func newTestSession(t *testing.T, seed int64, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultTunnelConfig(), seed, opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func frameStep() time.Duration {
	return core.NewStepClock(60).Step()
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t, 1)

	if s.Phase() != core.PhaseNotStarted {
		t.Errorf("Expected NotStarted, got %v", s.Phase())
	}
	if s.Score() != 0 {
		t.Errorf("Expected score 0, got %d", s.Score())
	}

	w := s.World()
	if len(w.Pairs) != 4 {
		t.Fatalf("Expected 4 pairs, got %d", len(w.Pairs))
	}
	for i, pair := range w.Pairs {
		if want := float64(i + 1); math.Abs(pair.X()-want) > eps {
			t.Errorf("Pair %d at x=%v, want %v", i, pair.X(), want)
		}
	}
	if w.Pairs[0].GapPos() != 0 {
		t.Errorf("First pair gap should be centred, got %v", w.Pairs[0].GapPos())
	}

	if w.Player.Transform != Identity() {
		t.Errorf("Player transform should be identity, got %+v", w.Player.Transform)
	}
	if w.Player.VerticalSpeed != 0 {
		t.Errorf("Player should start at rest, got %v", w.Player.VerticalSpeed)
	}
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultTunnelConfig()
	cfg.Track.Pairs = 0

	s, err := NewSession(cfg, 1)
	if err == nil {
		t.Fatal("Expected an error for zero pairs")
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
	if s != nil {
		t.Error("Expected no session on error")
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    core.Phase
		in      Input
		applied bool
		want    core.Phase
	}{
		{"press starts", core.PhaseNotStarted, InputPress, true, core.PhaseRunning},
		{"start starts", core.PhaseNotStarted, InputStart, true, core.PhaseRunning},
		{"jump before start", core.PhaseNotStarted, InputJump, false, core.PhaseNotStarted},
		{"restart before start", core.PhaseNotStarted, InputRestart, false, core.PhaseNotStarted},
		{"press jumps", core.PhaseRunning, InputPress, true, core.PhaseRunning},
		{"jump jumps", core.PhaseRunning, InputJump, true, core.PhaseRunning},
		{"start while running", core.PhaseRunning, InputStart, false, core.PhaseRunning},
		{"restart while running", core.PhaseRunning, InputRestart, false, core.PhaseRunning},
		{"press after game over", core.PhaseGameOver, InputPress, false, core.PhaseGameOver},
		{"jump after game over", core.PhaseGameOver, InputJump, false, core.PhaseGameOver},
		{"start after game over", core.PhaseGameOver, InputStart, false, core.PhaseGameOver},
		{"restart after game over", core.PhaseGameOver, InputRestart, true, core.PhaseNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, 1)
			s.phase = tt.from

			if got := s.Handle(tt.in); got != tt.applied {
				t.Errorf("Handle(%v) = %v, want %v", tt.in, got, tt.applied)
			}
			if s.Phase() != tt.want {
				t.Errorf("Phase = %v, want %v", s.Phase(), tt.want)
			}
		})
	}
}

func TestJumpOverwritesSpeed(t *testing.T) {
	s := newTestSession(t, 1)
	s.Start()

	s.World().Player.VerticalSpeed = -5
	s.Press()
	s.Press()

	if got := s.World().Player.VerticalSpeed; got != 1.0 {
		t.Errorf("Expected speed 1.0 after two jumps, got %v", got)
	}
}

func TestTickIgnoredOutsideRunning(t *testing.T) {
	s := newTestSession(t, 1)
	before := s.World().Pairs[0].X()

	out := s.Tick(time.Second)
	if out != (Outcome{}) {
		t.Errorf("Expected empty outcome, got %+v", out)
	}
	if s.World().Pairs[0].X() != before {
		t.Error("Pairs moved before the run started")
	}
	if s.Ticks() != 0 {
		t.Errorf("Expected 0 ticks, got %d", s.Ticks())
	}
}

func TestDeferredSessionWaitsForReady(t *testing.T) {
	s := newTestSession(t, 1, Deferred())

	if s.Ready() {
		t.Fatal("Deferred session should not be ready")
	}
	if s.Press() {
		t.Error("Not-ready session accepted input")
	}
	if s.Phase() != core.PhaseNotStarted {
		t.Errorf("Phase changed while not ready: %v", s.Phase())
	}

	s.phase = core.PhaseRunning
	if out := s.Tick(time.Second); out != (Outcome{}) || s.Ticks() != 0 {
		t.Error("Not-ready session ticked")
	}

	s.MarkReady()
	if !s.Press() {
		t.Error("Ready session ignored input")
	}
}

// Player at rest at the origin with the initial line-up: nothing overlaps.
func TestCollisionClearAtStart(t *testing.T) {
	s := newTestSession(t, 1)
	if Check(s.World(), s.Geometry()) {
		t.Error("Expected no collision at start")
	}
}

func TestCollisionWithTopPillar(t *testing.T) {
	s := newTestSession(t, 1)
	w := s.World()

	w.Pairs[0].Place(0, 0, s.Config().Track)
	w.Player.Transform.TY = 0.4

	if !Check(w, s.Geometry()) {
		t.Error("Expected collision with the top pillar")
	}
}

func TestCollisionWithBottomPillar(t *testing.T) {
	s := newTestSession(t, 1)
	w := s.World()

	w.Pairs[0].Place(0, 0, s.Config().Track)
	w.Player.Transform.TY = -0.21

	if !Check(w, s.Geometry()) {
		t.Error("Expected collision with the bottom pillar")
	}
}

func TestCollisionInsideGap(t *testing.T) {
	s := newTestSession(t, 1)
	w := s.World()

	w.Pairs[0].Place(0, 0.3, s.Config().Track)
	w.Player.Transform.TY = 0.3

	if Check(w, s.Geometry()) {
		t.Error("Player centred in the gap should not collide")
	}
}

func TestCollisionAtFieldEdge(t *testing.T) {
	s := newTestSession(t, 1)
	w := s.World()
	half := s.Config().Player.HalfSize

	w.Player.Transform.TY = 1 - half + 1e-6
	if !Check(w, s.Geometry()) {
		t.Error("Expected collision above the top edge")
	}

	w.Player.Transform.TY = -1 + half - 1e-6
	if !Check(w, s.Geometry()) {
		t.Error("Expected collision below the bottom edge")
	}

	w.Player.Transform.TY = 1 - half
	if Check(w, s.Geometry()) {
		t.Error("Touching the edge exactly should not collide")
	}
}

func TestRecycleScoresOnce(t *testing.T) {
	s := newTestSession(t, 7)
	s.Start()

	track := s.Config().Track
	s.World().Pairs[0].Place(-1.099, 0, track)

	out := s.Tick(frameStep())
	if out.Recycled != 1 {
		t.Fatalf("Expected 1 recycle, got %d", out.Recycled)
	}
	if s.Score() != 1 {
		t.Errorf("Expected score 1, got %d", s.Score())
	}
	if out.Collided {
		t.Error("Recycling should not collide")
	}

	// The old tail is still right of SpawnX, so the pair queues behind it.
	pair := s.World().Pairs[0]
	want := s.World().Pairs[track.Pairs-1].X() + track.Spacing
	if math.Abs(pair.X()-want) > eps {
		t.Errorf("Recycled pair at x=%v, want %v", pair.X(), want)
	}
	if g := pair.GapPos(); g < -0.7 || g > 0.7 {
		t.Errorf("Gap %v outside [-0.7, 0.7]", g)
	}

	// Already past the bound check: it must not recycle again.
	out = s.Tick(frameStep())
	if out.Recycled != 0 {
		t.Errorf("Expected no recycle on the next tick, got %d", out.Recycled)
	}
}

func TestRecycleFirstPassUsesSpawnX(t *testing.T) {
	track := config.DefaultTunnelConfig().Track
	w := NewWorld(track.Pairs)
	r := NewRing(track, 3)
	r.Line(w.Pairs)

	dt := frameStep().Seconds()
	for !r.MaybeRecycle(&w.Pairs[0]) {
		Integrate(&w, Physics{ScrollSpeed: 0.5}, dt)
	}
	if w.Pairs[0].X() != track.SpawnX {
		t.Errorf("First recycle at x=%v, want SpawnX %v", w.Pairs[0].X(), track.SpawnX)
	}
}

func TestRecycleKeepsSpacingForAnyPairCount(t *testing.T) {
	for _, pairs := range []int{1, 2, 4, 6, 9} {
		track := config.DefaultTunnelConfig().Track
		track.Pairs = pairs
		w := NewWorld(pairs)
		r := NewRing(track, int64(pairs))
		r.Line(w.Pairs)

		dt := frameStep().Seconds()
		recycles := 0
		minGap := math.Inf(1)
		for tick := 0; tick < 2000; tick++ {
			Integrate(&w, Physics{ScrollSpeed: 0.5}, dt)
			for i := range w.Pairs {
				if r.MaybeRecycle(&w.Pairs[i]) {
					recycles++
				}
			}
			for i := range w.Pairs {
				for j := i + 1; j < len(w.Pairs); j++ {
					minGap = min(minGap, math.Abs(w.Pairs[i].X()-w.Pairs[j].X()))
				}
			}
		}

		if recycles == 0 {
			t.Errorf("pairs=%d: nothing recycled", pairs)
		}
		if pairs > 1 && minGap < track.Spacing-1e-6 {
			t.Errorf("pairs=%d: pair centres came within %.3f, want at least %g", pairs, minGap, track.Spacing)
		}
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	calls := 0
	lastScore := -1
	s := newTestSession(t, 1, WithGameOverHook(func(score int) {
		calls++
		lastScore = score
	}))
	s.Start()
	s.score = 3
	s.World().Player.Transform.TY = 2

	out := s.Tick(frameStep())
	if !out.Collided || !out.EnteredGameOver {
		t.Fatalf("Expected collision entering game over, got %+v", out)
	}
	if s.Phase() != core.PhaseGameOver {
		t.Fatalf("Expected GameOver, got %v", s.Phase())
	}

	for i := 0; i < 10; i++ {
		if out := s.Tick(frameStep()); out.EnteredGameOver {
			t.Error("Game over entered twice")
		}
	}
	if s.endRun() {
		t.Error("endRun succeeded on a finished run")
	}

	if calls != 1 {
		t.Errorf("Hook called %d times, want 1", calls)
	}
	if lastScore != 3 {
		t.Errorf("Hook got score %d, want 3", lastScore)
	}
}

func TestRestartReinitializes(t *testing.T) {
	s := newTestSession(t, 1)
	s.Start()
	for i := 0; i < 10; i++ {
		s.Tick(frameStep())
	}
	s.score = 5
	s.phase = core.PhaseGameOver

	if !s.Restart() {
		t.Fatal("Restart ignored after game over")
	}
	if s.Score() != 0 || s.Ticks() != 0 {
		t.Errorf("Expected zeroed score and ticks, got %d, %d", s.Score(), s.Ticks())
	}
	if s.Phase() != core.PhaseNotStarted {
		t.Errorf("Expected NotStarted, got %v", s.Phase())
	}
	if s.World().Pairs[0].X() != 1 || s.World().Pairs[0].GapPos() != 0 {
		t.Error("Pairs not laid out again")
	}
	if s.World().Player.Transform != Identity() {
		t.Error("Player not reset")
	}
}

// playRun drives a session through many frames, pressing every k frames and
// restarting after each game over. check runs after every frame.
func playRun(s *Session, frames, k int, check func(before int, out Outcome)) {
	for i := 0; i < frames; i++ {
		if s.Phase() == core.PhaseGameOver {
			s.Restart()
		}
		if i%k == 0 {
			s.Press()
		}
		before := s.Score()
		out := s.Frame()
		check(before, out)
	}
}

func TestPairsStayAlignedAndPoolFixed(t *testing.T) {
	s := newTestSession(t, 99)
	pool := &s.World().Pairs[0]

	playRun(s, 3000, 20, func(int, Outcome) {
		w := s.World()
		if len(w.Pairs) != 4 || &w.Pairs[0] != pool {
			t.Fatal("Pair pool was reallocated")
		}
		for i, pair := range w.Pairs {
			if pair.Top.Transform.TX != pair.Bottom.Transform.TX {
				t.Fatalf("Pair %d stalks at different x", i)
			}
			if pair.Top.GapPos != pair.Bottom.GapPos {
				t.Fatalf("Pair %d stalks disagree on gap", i)
			}
			if pair.Top.Kind != KindPillarTop || pair.Bottom.Kind != KindPillarBottom {
				t.Fatalf("Pair %d kinds changed", i)
			}
		}
	})
}

func TestScoreMatchesRecycles(t *testing.T) {
	s := newTestSession(t, 5)

	playRun(s, 3000, 21, func(before int, out Outcome) {
		if s.Phase() == core.PhaseNotStarted {
			return
		}
		if s.Score() != before+out.Recycled {
			t.Fatalf("Score went %d -> %d with %d recycles", before, s.Score(), out.Recycled)
		}
	})
}

func TestFrameResamplesWhileIdle(t *testing.T) {
	s := newTestSession(t, 1)

	// Time passes before the run starts; none of it is simulated later.
	for i := 0; i < 100; i++ {
		s.Frame()
	}
	s.Start()
	s.Frame()

	dt := frameStep().Seconds()
	want := 1 - 0.5*dt
	if got := s.World().Pairs[0].X(); math.Abs(got-want) > eps {
		t.Errorf("Pair 0 at x=%v, want %v", got, want)
	}
	if s.Ticks() != 1 {
		t.Errorf("Expected 1 tick, got %d", s.Ticks())
	}
}

func TestResampleSkipsPausedTime(t *testing.T) {
	clock := core.NewStepClock(60)
	s := newTestSession(t, 1, WithClock(clock))
	s.Start()

	for i := 0; i < 50; i++ {
		s.Resample()
	}
	out := s.Frame()
	if out.Collided {
		t.Fatal("Unexpected collision")
	}

	dt := clock.Step().Seconds()
	if got, want := s.World().Player.VerticalSpeed, -1.8*dt; math.Abs(got-want) > eps {
		t.Errorf("Speed %v, want %v", got, want)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() (int, int, []float64) {
		s := newTestSession(t, 12345)
		var ended bool
		for i := 0; i < 2000 && !ended; i++ {
			if i%18 == 0 {
				s.Press()
			}
			ended = s.Frame().EnteredGameOver
		}
		gaps := make([]float64, 0, len(s.World().Pairs))
		for _, p := range s.World().Pairs {
			gaps = append(gaps, p.GapPos())
		}
		return s.Score(), s.Ticks(), gaps
	}

	score1, ticks1, gaps1 := run()
	score2, ticks2, gaps2 := run()

	if score1 != score2 || ticks1 != ticks2 {
		t.Errorf("Runs differ: score %d/%d ticks %d/%d", score1, score2, ticks1, ticks2)
	}
	for i := range gaps1 {
		if gaps1[i] != gaps2[i] {
			t.Errorf("Gap %d differs: %v vs %v", i, gaps1[i], gaps2[i])
		}
	}
}

func TestDifficultyScalesScrollSpeed(t *testing.T) {
	cfg := config.DefaultTunnelConfig()
	config.ApplyTunnelPreset(&cfg, config.DifficultyHard)

	s, err := NewSession(cfg, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if got := s.physics().ScrollSpeed; got <= cfg.Physics.ScrollSpeed {
		t.Errorf("Hard preset speed %v should exceed base %v", got, cfg.Physics.ScrollSpeed)
	}

	base := newTestSession(t, 1)
	if got := base.physics().ScrollSpeed; got != 0.5 {
		t.Errorf("Default speed %v, want constant 0.5", got)
	}
}
