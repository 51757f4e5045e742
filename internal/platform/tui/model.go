package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tunnel/internal/core"
	"github.com/vovakirdan/tui-tunnel/internal/registry"
	"github.com/vovakirdan/tui-tunnel/internal/storage"
)

// tickCounter is implemented by games that count simulated ticks per run.
type tickCounter interface {
	Ticks() int
}

// configErrer is implemented by games that fall back to defaults when
// their configuration cannot be loaded.
type configErrer interface {
	Err() error
}

// GameModel is the Bubble Tea model that hosts one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	inputFrame core.InputFrame
	gameState  core.GameState
	runStarted time.Time

	embedded   bool // Hosted inside a session; Back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Score saved for the current game-over episode
}

// NewGameModel creates a model for game. A nil store disables score saving
// and a nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ce, ok := m.game.(configErrer); ok && ce.Err() != nil {
		m.logger.Warn("config rejected, using defaults", "game", m.game.ID(), "error", ce.Err())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver() || m.gameState.Paused) {
		m.inputFrame.Clear()
		if !m.embedded {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}
	return m, nil
}

// handleResize resizes the frame buffer in place; the run keeps going.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState.Phase
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if cur := m.gameState.Phase; cur != prev {
		m.logger.Debug("phase changed", "game", m.game.ID(), "from", prev, "to", cur, "score", m.gameState.Score)
		switch cur {
		case core.PhaseRunning:
			m.runStarted = time.Now()
		case core.PhaseNotStarted:
			m.scoreSaved = false
		}
	}

	if result.EnteredGameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged; play continues.
func (m GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Duration: time.Since(m.runStarted),
		Seed:     m.config.Seed,
	}
	if tc, ok := m.game.(tickCounter); ok {
		run.Ticks = tc.Ticks()
	}

	if _, err := m.store.RecordRun(run); err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "score", run.Score, "error", err)
		return
	}
	m.logger.Debug("run saved", "game", run.GameID, "score", run.Score, "ticks", run.Ticks)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
