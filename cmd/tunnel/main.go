// tunnel is a terminal side-scroller: keep the player in the air and steer
// it through the gaps of oncoming pillar pairs.
//
// Usage:
//
//	tunnel list                  - List game variants
//	tunnel play [variant]        - Play (default variant: tunnel)
//	tunnel menu                  - Pick a variant interactively
//	tunnel scores <variant>      - Show high scores and recent runs
//	tunnel serve                 - Start SSH server for remote play
//	tunnel snapshot --out f.png  - Simulate a run and save a PNG frame
//
// Global flags:
//
//	--fps <rate>        - Frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible tracks
//	--db <path>         - Scores database (default: ~/.tunnel/scores.db)
//	--log-level <level> - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tunnel/internal/core"
	_ "github.com/vovakirdan/tui-tunnel/internal/games/tunnel" // Registers both variants
	"github.com/vovakirdan/tui-tunnel/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tunnel",
	Short: "Tunnel - fly through the gaps in your terminal",
	Long: `Tunnel is a terminal side-scroller. Gravity pulls the player down,
SPACE or a mouse click jumps, and pillar pairs scroll in from the right.
Every pair that leaves the screen scores a point; touching a pillar or
the edge of the screen ends the run.

Examples:
  tunnel play
  tunnel play tunnel-sprites --difficulty hard
  tunnel menu
  tunnel scores tunnel
  tunnel serve --ssh :2222
  tunnel snapshot --out frame.png --ticks 240`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		l, err := newLogger(flagLogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger builds the process logger. It writes to stderr so it never
// mixes with the game frames Bubble Tea draws on stdout.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "tunnel",
		ReportTimestamp: true,
	})
	l.SetLevel(lvl)
	return l, nil
}

// openStore opens the scores database. Failure is logged and play goes on
// without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the frame-loop settings for a terminal of w x h.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Clock:    core.SystemClock{},
	}
}
