package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tunnel/internal/platform/tui"
	"github.com/vovakirdan/tui-tunnel/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in menu mode. After each game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  Tab          - High scores
  Q            - Quit

Examples:
  tunnel menu
  tunnel menu --fps 30 --difficulty normal`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(terminalSize())
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, "", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return nil
			}

		case result.GameID != "":
			game, err := registry.Create(result.GameID)
			if err != nil {
				logger.Error("cannot create game", "game", result.GameID, "error", err)
				continue
			}

			// A fresh track every game unless --seed pins it.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, cfg, logger); err != nil {
				logger.Error("game failed", "game", result.GameID, "error", err)
			}
		}
	}
}
