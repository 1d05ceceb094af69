package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pillow-tower/internal/games/pillow"
	"github.com/vovakirdan/pillow-tower/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets anyone connect and stack pillows.

Each SSH connection gets its own session with the mode menu. Scores are
stored per server, so every player shares the same scoreboard. Sound is
never played on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/pillow_host_key

Examples:
  pillowtower serve                           # Listen on :23234
  pillowtower serve --ssh :2222               # Listen on port 2222
  pillowtower serve --host-key ./my_host_key  # Use specific host key
  pillowtower serve --db ./pillow.db          # Use specific database

Players connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "pillow-ssh")
	pillow.SetLogger(logger.WithPrefix("pillow"))
	pillow.SetConfigPath(flagServeConfig)
	pillow.SetAudio(nil)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pillow tower SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
