package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tunnel/internal/games/tunnel"
	"github.com/vovakirdan/tui-tunnel/internal/platform/tui"
	"github.com/vovakirdan/tui-tunnel/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The variant defaults to "tunnel".

Controls:
  Space/Up/W/click - Start, then jump
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Leave (after game over or while paused)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Scroll speed starts at base and speeds up with score
  normal - Starts 30% of the way up
  hard   - Starts 70% of the way up
  fixed  - Constant speed at the config's initial level

Examples:
  tunnel play
  tunnel play tunnel-sprites
  tunnel play --difficulty hard
  tunnel play --config ./my-tunnel.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// applyGameFlags hands --config and --difficulty to the game package and
// checks the result, so a broken config fails before the screen is taken over.
func applyGameFlags() error {
	tunnel.SetConfigPath(flagConfig)
	tunnel.SetDifficultyPreset(flagDifficulty)

	if _, err := tunnel.LoadConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tunnel.IDSolid
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'tunnel list')", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(terminalSize()), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
