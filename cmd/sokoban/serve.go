package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sokoban SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game with a level picker. Solutions are
saved under the SSH user name, so all users share the same boards. Point
--db at a postgres:// URL to share boards between several servers.

Examples:
  sokoban serve
  sokoban serve --ssh :2222
  sokoban serve --host-key ./host_key
  sokoban serve --db postgres://sokoban@db/sokoban?sslmode=disable

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.addr")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key")
}

func runServe(cmd *cobra.Command, _ []string) {
	set, err := loadLevels(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open scores database, solutions will not be saved", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	sc := tui.DefaultSSHServerConfig()
	if cfg.Server.Addr != "" {
		sc.Address = cfg.Server.Addr
	}
	if cfg.Server.HostKeyPath != "" {
		sc.HostKeyPath = config.ExpandHome(cfg.Server.HostKeyPath)
	}
	if cfg.Server.IdleTimeout > 0 {
		sc.IdleTimeout = cfg.Server.IdleTimeout
	}
	sc.TickRate = cfg.Display.TickRate
	sc.Glyphs = glyphs()
	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sc.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(sc, set, store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}
	if flagVerbose {
		server.SetLogger(logger.WithPrefix("sokoban-ssh"))
	}

	fmt.Printf("Starting Sokoban SSH server on %s\n", sc.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
