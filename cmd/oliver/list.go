package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/prince-of-oliver/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and every level file found in the levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	all := registry.List()

	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Source")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	// Print levels
	for _, l := range all {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'oliver play <id>' to play a level.")
}
