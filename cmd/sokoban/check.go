package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Validate level files",
	Long: `Parse and validate level files or directories. Without arguments the
built-in levels and the --levels directory are checked.

Every level must have exactly one player, as many boxes as targets, and
no player or box on a wall or outside the grid.

Examples:
  sokoban check
  sokoban check ./my-levels
  sokoban check ./my-levels/hard.sok`,
	Run: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	var loaders []*levels.Loader
	var files []string

	if len(args) == 0 {
		loaders = append(loaders, levels.Builtin())
		if cfg.Levels.Dir != "" {
			loaders = append(loaders, levels.NewLoader(config.ExpandHome(cfg.Levels.Dir)))
		}
	}
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			loaders = append(loaders, levels.NewLoader(path))
		} else {
			files = append(files, path)
		}
	}

	ok, failed := 0, 0

	for _, ld := range loaders {
		set, problems, err := ld.Check(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, lvl := range set {
			fmt.Printf("  ok    %s (%s)\n", lvl.Source, lvl.Name)
		}
		for _, p := range problems {
			fmt.Printf("  FAIL  %v\n", p)
		}
		ok += len(set)
		failed += len(problems)
	}

	for _, path := range files {
		lvl, err := levels.NewLoader(filepath.Dir(path)).LoadFile(filepath.Base(path))
		if err != nil {
			fmt.Printf("  FAIL  %v\n", err)
			failed++
			continue
		}
		fmt.Printf("  ok    %s (%s)\n", lvl.Source, lvl.Name)
		ok++
	}

	fmt.Println()
	fmt.Printf("%d valid, %d invalid\n", ok, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
