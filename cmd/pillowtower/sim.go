package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pillow-tower/internal/core"
	"github.com/vovakirdan/pillow-tower/internal/games/pillow"
	"github.com/vovakirdan/pillow-tower/internal/registry"
	"github.com/vovakirdan/pillow-tower/internal/storage"
)

var (
	flagSimMode  string
	flagSimTicks int
	flagSimCols  int
	flagSimRows  int
	flagSimQuiet bool
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autoplayer",
	Long: `Run a game without a terminal UI. The autoplayer drops pillows when they
hang over the tower and sometimes cuts the line instead. Every event is
printed with its tick and simulated time. The same seed always produces
the same run.

Examples:
  pillowtower sim --seed 42
  pillowtower sim --mode pillow-hard --ticks 20000 --quiet
  pillowtower sim --seed 7 --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", defaultMode, "Mode to simulate")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 18000, "Maximum ticks to run")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Virtual terminal width")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Virtual terminal height")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the summary")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the scores database")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "pillow-sim")
	pillow.SetLogger(logger)

	created, err := registry.Create(flagSimMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pillowtower list' to see available modes.")
		os.Exit(1)
	}
	game, ok := created.(*pillow.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: mode %q cannot be simulated\n", flagSimMode)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  flagSimCols,
		ScreenH:  flagSimRows,
		TickRate: flagFPS,
		Seed:     seed,
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	game.Reset(cfg)
	bot := pillow.NewAutoplayer(seed)
	tickMs := cfg.TickMillis()

	var state core.GameState
	tick := 0
	for ; tick < flagSimTicks; tick++ {
		result := game.Step(bot.Next(game))
		state = result.State
		if !flagSimQuiet {
			for _, ev := range result.Events {
				fmt.Printf("%6d  %9.0fms  %s\n", tick, float64(tick+1)*tickMs, ev)
			}
		}
		if state.GameOver {
			tick++
			break
		}
	}

	fmt.Println()
	fmt.Printf("Mode:      %s\n", game.Title())
	fmt.Printf("Seed:      %d\n", seed)
	fmt.Printf("Ticks:     %d\n", tick)
	fmt.Printf("Tower:     %d\n", state.Score)
	fmt.Printf("Lives:     %d\n", state.Lives)
	fmt.Printf("Misses:    %d\n", state.Misses)
	fmt.Printf("Feathers:  %d\n", state.Feathers)
	fmt.Printf("Time:      %s\n", state.Elapsed.Round(time.Millisecond))
	if state.GameOver {
		fmt.Println("Result:    game over")
	} else {
		fmt.Println("Result:    still standing")
	}

	if flagSimSave {
		saveSimRun(game.ID(), state)
	}
}

// saveSimRun records a finished simulation like a played run.
func saveSimRun(mode string, state core.GameState) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunResult{
		Mode:     mode,
		Score:    state.Score,
		Feathers: state.Feathers,
		Misses:   state.Misses,
		Duration: state.Elapsed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Printf("Saved as run #%d\n", id)
}
