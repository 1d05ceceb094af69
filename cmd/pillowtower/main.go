// pillowtower is a pillow stacking game for the terminal.
//
// Usage:
//
//	pillowtower list              - List available modes
//	pillowtower play [mode]       - Play a mode (default: pillow)
//	pillowtower menu              - Pick modes interactively
//	pillowtower sim               - Run a headless game with the autoplayer
//	pillowtower scores [mode]     - Show the tallest towers
//	pillowtower serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/pillow.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pillow-tower/internal/games/pillow"
)

const defaultMode = "pillow"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pillowtower",
	Short: "Pillow Tower - stack swinging pillows in your terminal",
	Long: `Pillow Tower drops pillows from a swinging line. Release each one over
the tower, or drag across the line to cut it, and build as high as you can.
Five misses end the run.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  sim      - Headless run driven by the autoplayer
  scores   - View the tallest towers
  serve    - Start SSH server for remote play

Examples:
  pillowtower play
  pillowtower play pillow-hard
  pillowtower sim --ticks 5000 --seed 42
  pillowtower serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/pillow.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// openGameLog returns a logger writing to ~/.arcade/pillow.log, since the
// alt screen owns stdout while a game runs. The returned closer is never nil.
func openGameLog() (*log.Logger, io.Closer) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "pillow.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}

	logger := newLogger(f, "pillow")
	pillow.SetLogger(logger)
	return logger, f
}
