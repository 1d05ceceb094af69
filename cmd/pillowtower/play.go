package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pillow-tower/internal/audio"
	"github.com/vovakirdan/pillow-tower/internal/core"
	"github.com/vovakirdan/pillow-tower/internal/games/pillow"
	"github.com/vovakirdan/pillow-tower/internal/platform/tui"
	"github.com/vovakirdan/pillow-tower/internal/registry"
	"github.com/vovakirdan/pillow-tower/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (pillow when omitted).

Controls:
  Space/Enter  - Drop the pillow
  Mouse drag   - Cut the line
  F            - Call a feather burst
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options (pillow mode only, other modes carry their own):
  easy   - More lives, calm sway
  normal - Default lives, sway grows with the tower
  hard   - Fewer lives, wide fast sway
  fixed  - No progression

Examples:
  pillowtower play
  pillowtower play pillow-hard
  pillowtower play --difficulty easy --sound
  pillowtower play --config ./my-pillow.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.7, "Sound volume between 0 and 1")
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupGame applies the play flags to the game package and starts audio when
// requested. The returned cleanup must always be called.
func setupGame(logger *log.Logger) func() {
	pillow.SetConfigPath(flagConfig)
	pillow.SetDifficultyPreset(flagDifficulty)

	if !flagSound {
		pillow.SetAudio(nil)
		return func() {}
	}

	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		pillow.SetAudio(nil)
		return func() {}
	}
	pillow.SetAudio(sm)
	return func() {
		pillow.SetAudio(nil)
		sm.Cleanup()
	}
}

func runPlay(_ *cobra.Command, args []string) {
	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'pillowtower list' to see available modes.")
		os.Exit(1)
	}

	logger, logFile := openGameLog()
	defer logFile.Close()

	cleanup := setupGame(logger)
	defer cleanup()

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// The game still works without storage.
		store = nil
	}

	runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		cleanup()
		os.Exit(1)
	}
}
