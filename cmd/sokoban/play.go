package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play Sokoban",
	Long: `Open the level picker, or start a level directly by ID or name.

Controls:
  Arrows/WASD/hjkl  - Move and push
  R/U               - Restart the level (new attempt)
  Enter/N           - Next level (after solving)
  Esc/B             - Back to the level picker
  Tab               - Scores (in the level picker)
  Q/Ctrl+C          - Quit

Solved attempts are saved to the scores database. While playing, log
output goes to ~/.sokoban/sokoban.log.

Examples:
  sokoban play
  sokoban play chaos
  sokoban play "Mini Cosmos" --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	set, err := loadLevels(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	start := 0
	if len(args) == 1 {
		start = findLevel(set, args[0])
		if start < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
			os.Exit(1)
		}
	}

	// The alternate screen owns the terminal; keep log lines out of it.
	if f := openLogFile(); f != nil {
		defer f.Close()
		logger.SetOutput(f)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	opts := []sokoban.Option{
		sokoban.WithPlayerName(playerName()),
		sokoban.WithGlyphs(glyphs()),
		sokoban.WithStartLevel(start),
	}
	var scores sokoban.HighScores
	if store != nil {
		scores = store
		opts = append(opts,
			sokoban.WithRecorder(storage.NewRecorder(store, logger)),
			sokoban.WithHighScores(store),
		)
	}

	game, err := sokoban.New(set, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
	}

	if len(args) == 1 {
		back, updated, runErr := tui.Run(game, rc)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !back {
			return
		}
		rc = updated
	}

	names := make([]string, len(set))
	for i, lvl := range set {
		names[i] = lvl.Name
	}

	for {
		result, menuErr := tui.RunMenu(set, scores, game.LevelIndex(), rc)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			return
		}
		rc = result.Config

		if result.Quit {
			return
		}

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, names, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if err := game.SelectLevel(result.Level); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		back, updated, runErr := tui.Run(game, rc)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			return
		}
		rc = updated
		if !back {
			return
		}
	}
}

// findLevel matches an argument against level IDs, then names.
func findLevel(set []levels.Level, arg string) int {
	for i, lvl := range set {
		if lvl.ID == arg {
			return i
		}
	}
	for i, lvl := range set {
		if strings.EqualFold(lvl.Name, arg) {
			return i
		}
	}
	return -1
}

// openLogFile opens ~/.sokoban/sokoban.log for appending. Returns nil on failure.
func openLogFile() *os.File {
	path := config.ExpandHome(filepath.Join("~", ".sokoban", "sokoban.log"))
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(filepath.Dir(path), 0o755)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil
	}
	return f
}
