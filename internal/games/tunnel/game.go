package tunnel

import (
	"fmt"

	"github.com/vovakirdan/tui-tunnel/internal/config"
	"github.com/vovakirdan/tui-tunnel/internal/core"
	"github.com/vovakirdan/tui-tunnel/internal/registry"
)

// Game IDs of the two registered variants.
const (
	IDSolid   = "tunnel"
	IDSprites = "tunnel-sprites"
)

// HUD text.
const (
	startHint   = "Press SPACE or click to start"
	jumpHint    = "SPACE/click: jump  P: pause  Q: quit"
	waitingHint = "Waiting for terminal size..."
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the game configuration from the CLI settings.
func LoadConfig() (config.TunnelConfig, error) {
	cfg, err := config.LoadTunnel(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyTunnelPreset(&cfg, difficultyPreset)
	return cfg, cfg.Validate()
}

// Game adapts a Session to the registry's frame-driven Game interface.
// Pause is kept here rather than in the session: it freezes ticking
// without being a phase of the run.
type Game struct {
	id      string
	title   string
	palette Palette

	session *Session
	paused  bool
	err     error
}

// New creates the solid-colour variant.
func New() *Game {
	return &Game{id: IDSolid, title: "Tunnel", palette: SolidPalette}
}

// NewSprites creates the textured variant.
func NewSprites() *Game {
	return &Game{id: IDSprites, title: "Tunnel (sprites)", palette: SpritePalette}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Palette returns the materials this variant paints with.
func (g *Game) Palette() Palette {
	return g.palette
}

// Reset builds a fresh session. A configuration that fails to load falls
// back to the built-in defaults; the failure is kept in Err.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.paused = false
	g.err = nil

	cfg, err := LoadConfig()
	if err != nil {
		g.err = err
		cfg = config.DefaultTunnelConfig()
	}

	session, err := NewSession(cfg, rc.Seed, WithClock(rc.FrameClock()), Deferred())
	if err != nil {
		// Defaults always validate; reaching this means the build is broken.
		panic(fmt.Sprintf("tunnel: default config rejected: %v", err))
	}
	g.session = session

	// A terminal without a size cannot show the field yet.
	if rc.ScreenW > 0 && rc.ScreenH > 0 {
		g.session.MarkReady()
	}
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() int {
	if g.session == nil {
		return 0
	}
	return g.session.Ticks()
}

// Resize tells the game the terminal now has a size.
func (g *Game) Resize(w, h int) {
	if g.session != nil && w > 0 && h > 0 {
		g.session.MarkReady()
	}
}

// Step applies this frame's input and then advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session

	if in.Has(core.ActionRestart) && s.Restart() {
		g.paused = false
	}

	if in.Has(core.ActionPause) && s.Phase() == core.PhaseRunning {
		g.paused = !g.paused
	}

	if g.paused {
		s.Resample()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFlap) {
		s.Press()
	}

	out := s.Frame()
	return core.StepResult{
		State:           g.State(),
		Recycled:        out.Recycled,
		EnteredGameOver: out.EnteredGameOver,
	}
}

// Render draws the field and the HUD.
func (g *Game) Render(dst *core.Screen) {
	if !g.session.Ready() {
		dst.Clear()
		dst.DrawTextCentered(dst.Height()/2, waitingHint)
		return
	}

	g.session.Draw(NewScreenRenderer(dst), g.palette)

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", g.session.Score()), core.ColorBrightWhite)

	switch g.session.Phase() {
	case core.PhaseNotStarted:
		g.drawCenteredMessage(dst, "TUNNEL", startHint)
	case core.PhaseRunning:
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		} else {
			dst.DrawTextColored(1, dst.Height()-1, jumpHint, core.ColorGray)
		}
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "Game Over!", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.session.Score(),
		Phase:  g.session.Phase(),
		Paused: g.paused,
		Ready:  g.session.Ready(),
	}
}

// Register both variants with the registry
func init() {
	registry.Register(IDSolid, func() registry.Game {
		return New()
	})
	registry.Register(IDSprites, func() registry.Game {
		return NewSprites()
	})
}
