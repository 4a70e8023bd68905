package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and those found in the --levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	set, err := loadLevels(cmd.Context())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range set {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len([]rune(lvl.Name)))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Size", "Boxes", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", maxNameLen, "----", "----", "-----", "------")

	for _, lvl := range set {
		size := fmt.Sprintf("%dx%d", lvl.Width(), lvl.Height())
		fmt.Printf("  %-*s  %-*s  %-7s  %-5d  %s\n", maxIDLen, lvl.ID, maxNameLen, lvl.Name, size, lvl.Boxes(), lvl.Source)
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a level.")
}
