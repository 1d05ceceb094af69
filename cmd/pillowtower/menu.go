package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pillow-tower/internal/platform/tui"
	"github.com/vovakirdan/pillow-tower/internal/registry"
	"github.com/vovakirdan/pillow-tower/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  pillowtower menu
  pillowtower menu --sound
  pillowtower menu --db ./pillow.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for the pillow mode")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Sound volume between 0 and 1")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logFile := openGameLog()
	defer logFile.Close()

	cleanup := setupGame(logger)
	defer cleanup()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Pick up any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
