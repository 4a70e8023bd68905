package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagRemove string
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high-score boards",
	Long: `Print the high-score board of one level, or of every level that has
been solved. Boards are ranked by moves, then attempts, then player name.
With --player only that player's solutions are listed.

Examples:
  sokoban scores
  sokoban scores Chaos
  sokoban scores --player alice
  sokoban scores --remove-player alice
  sokoban scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagRemove, "remove-player", "", "Delete every solution by this player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all solutions")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 0, "Rows per board (0 = entries_per_level from config)")
}

func runScores(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.Clear(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("all scores cleared")
		return

	case flagRemove != "":
		n, err := store.RemoveScoresFor(ctx, flagRemove)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores removed", "player", flagRemove, "entries", n)
		return

	case flagPlayer != "":
		entries, err := store.PlayerEntries(ctx, flagPlayer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Solutions by %s\n\n", flagPlayer)
		if len(entries) == 0 {
			fmt.Println("No solutions recorded yet.")
			return
		}
		fmt.Printf("  %-24s  %-6s  %-8s  %s\n", "Level", "Moves", "Attempts", "Date")
		fmt.Printf("  %-24s  %-6s  %-8s  %s\n", "-----", "-----", "--------", "----")
		for _, e := range entries {
			fmt.Printf("  %-24s  %-6d  %-8d  %s\n", e.Level, e.Moves, e.Attempts, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.Storage.EntriesPerLevel
	}

	var boards []storage.LevelBoard
	if len(args) == 1 {
		entries, err := store.Board(ctx, args[0], limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		boards = []storage.LevelBoard{{Level: args[0], Entries: entries}}
	} else {
		boards, err = store.Boards(ctx, limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}

	if len(boards) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sokoban play' to set the first high score!")
		return
	}

	for i, board := range boards {
		if i > 0 {
			fmt.Println()
		}
		printBoard(board)
	}
}

func printBoard(board storage.LevelBoard) {
	fmt.Printf("High Scores - %s\n", board.Level)
	fmt.Println()

	if len(board.Entries) == 0 {
		fmt.Println("  Nobody has solved this level yet.")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "Rank", "Player", "Moves", "Attempts", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-8s  %s\n", "----", "------", "-----", "--------", "----")
	for i, e := range board.Entries {
		fmt.Printf("  %-4d  %-16s  %-6d  %-8d  %s\n", i+1, e.Player, e.Moves, e.Attempts, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	best := board.Entries[0]
	fmt.Println()
	fmt.Printf("  Best solution (%s): %s\n", best.Player, best.Solution)
}
