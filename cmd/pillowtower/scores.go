package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pillow-tower/internal/platform/tui"
	"github.com/vovakirdan/pillow-tower/internal/registry"
	"github.com/vovakirdan/pillow-tower/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagStats  bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the tallest towers",
	Long: `Browse recorded runs in an interactive scoreboard, or print them as
plain text with --plain.

Examples:
  pillowtower scores
  pillowtower scores pillow-hard --plain
  pillowtower scores --plain --recent
  pillowtower scores --plain --stats
  pillowtower scores pillow-hard --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table instead of the scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "With --plain, list the latest runs of every mode")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "With --plain, summarize every mode that has been played")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode, e.g. 'pillowtower scores pillow --clear'")
			return
		}
		if err := store.ClearScores(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all runs of %s.\n", args[0])
		return
	}

	if !flagPlain {
		cfg := terminalConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagRecent {
		printRecent(store)
		return
	}
	if flagStats {
		if err := printStats(os.Stdout, store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		}
		return
	}

	mode := defaultMode
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'pillowtower list' to see available modes.")
		return
	}
	printTop(store, mode)
}

func printTop(store *storage.Store, mode string) {
	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		return
	}

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("Tallest Towers - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No towers recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pillowtower play %s' to set the first record!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-7s  %s\n", "Rank", "Tower", "Feathers", "Misses", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-7s  %s\n", "----", "-----", "--------", "------", "----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-8d  %-6d  %-7s  %s\n",
			i+1, e.Score, e.Feathers, e.Misses, clock(e.Duration), e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(mode); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Pillows stacked: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalPillows)
	}
}

func printRecent(store *storage.Store) {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Recent Runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-14s  %-6s  %-7s  %s\n", "Mode", "Tower", "Time", "Date")
	fmt.Printf("  %-14s  %-6s  %-7s  %s\n", "----", "-----", "----", "----")
	for _, e := range runs {
		fmt.Printf("  %-14s  %-6d  %-7s  %s\n", e.Mode, e.Score, clock(e.Duration), e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// printStats writes one summary line per played mode, best tower first.
func printStats(w io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "All Modes")
	fmt.Fprintln(w)
	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	stats := make([]*storage.ModeStats, 0, len(all))
	for _, s := range all {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].HighScore != stats[j].HighScore {
			return stats[i].HighScore > stats[j].HighScore
		}
		return stats[i].Mode < stats[j].Mode
	})

	fmt.Fprintf(w, "  %-14s  %-4s  %-4s  %-7s  %-7s  %s\n", "Mode", "Best", "Runs", "Average", "Pillows", "Last played")
	fmt.Fprintf(w, "  %-14s  %-4s  %-4s  %-7s  %-7s  %s\n", "----", "----", "----", "-------", "-------", "-----------")
	for _, s := range stats {
		fmt.Fprintf(w, "  %-14s  %-4d  %-4d  %-7.1f  %-7d  %s\n",
			s.Mode, s.HighScore, s.Runs, s.AvgScore, s.TotalPillows, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// clock formats a run length as m:ss.
func clock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
