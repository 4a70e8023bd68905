// sokoban is the classic box-pushing puzzle for the terminal.
//
// Usage:
//
//	sokoban play [level-id]   - Pick a level and play (or start one directly)
//	sokoban list              - List available levels
//	sokoban check [paths...]  - Validate level files
//	sokoban scores [level]    - Show high-score boards
//	sokoban serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Config file (default: search ~/.sokoban, ./configs)
//	--db <dsn>       - SQLite path or postgres:// URL for scores
//	--player <name>  - Name recorded with solutions
//	--levels <dir>   - Extra directory of .sok/.yaml levels
//	--verbose        - Debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDB        string
	flagPlayer    string
	flagLevelsDir string
	flagVerbose   bool

	cfg    config.SokobanConfig
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes onto targets in your terminal",
	Long: `Sokoban is the warehouse puzzle: walk the keeper around the grid and
push every box onto a target. Boxes can only be pushed, one at a time.

Available commands:
  play     - Pick a level and play
  list     - Show all available levels
  check    - Validate level files
  scores   - View high-score boards
  serve    - Start SSH server for remote play

Examples:
  sokoban play
  sokoban play chaos
  sokoban list --levels ./my-levels
  sokoban scores "Mini Cosmos"
  sokoban serve --db postgres://sokoban@localhost/sokoban?sslmode=disable`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Scores database: SQLite path or postgres:// URL")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with solutions")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the config and applies flag overrides.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	loaded, err := config.LoadSokoban(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDB != "" {
		cfg.Storage.DSN = flagDB
	}
	if flagPlayer != "" {
		cfg.Player.Name = flagPlayer
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = flagLevelsDir
	}

	logger.Debug("config loaded", "dsn", cfg.Storage.DSN, "levels", cfg.Levels.Dir, "builtin", cfg.Levels.Builtin)
	return nil
}

// playerName returns the configured name, falling back to the OS user.
func playerName() string {
	if cfg.Player.Name != "" {
		return cfg.Player.Name
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// loadLevels merges the built-in set with the configured directory.
// Built-in levels win on duplicate IDs.
func loadLevels(ctx context.Context) ([]levels.Level, error) {
	var loaders []*levels.Loader
	if cfg.Levels.Builtin {
		loaders = append(loaders, levels.Builtin())
	}
	if cfg.Levels.Dir != "" {
		l := levels.NewLoader(config.ExpandHome(cfg.Levels.Dir))
		l.Concurrency = cfg.Levels.Concurrency
		loaders = append(loaders, l)
	}
	if len(loaders) == 0 {
		return nil, fmt.Errorf("no level sources: enable builtin levels or set --levels")
	}

	set, err := levels.Merge(ctx, loaders...)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no levels found")
	}
	logger.Debug("levels loaded", "count", len(set))
	return set, nil
}

// openStore opens the configured score database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(cfg.Storage.DSN)
	if err != nil {
		return nil, err
	}
	store.EntriesPerLevel = cfg.Storage.EntriesPerLevel
	logger.Debug("score store opened", "dialect", store.Dialect())
	return store, nil
}

// glyphs converts the configured characters for the renderer.
func glyphs() sokoban.Glyphs {
	g := cfg.Display.Glyphs
	return sokoban.Glyphs{
		Wall:         config.Rune(g.Wall),
		Floor:        config.Rune(g.Floor),
		Target:       config.Rune(g.Target),
		Box:          config.Rune(g.Box),
		BoxOnTarget:  config.Rune(g.BoxOnTarget),
		PlayerUp:     config.Rune(g.PlayerUp),
		PlayerDown:   config.Rune(g.PlayerDown),
		PlayerLeft:   config.Rune(g.PlayerLeft),
		PlayerRight:  config.Rune(g.PlayerRight),
		PlayerSolved: config.Rune(g.PlayerSolved),
		CellWidth:    g.CellWidth,
	}
}
