package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var kwicWindow int

var kwicCmd = &cobra.Command{
	Use:   "kwic [keyword]",
	Short: "Show keyword-in-context matches",
	Long: `Finds every occurrence of the keyword across the stored chunk
sequence and prints it with surrounding context.`,
	Args: cobra.ExactArgs(1),
	RunE: runKwic,
}

func init() {
	kwicCmd.Flags().IntVarP(&kwicWindow, "window", "w", 0, "context window in characters (default: configured or 40)")
	rootCmd.AddCommand(kwicCmd)
}

func runKwic(cmd *cobra.Command, args []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	entries, err := analyticsService.Concordance(context.Background(), args[0], kwicWindow)
	if err != nil {
		return fmt.Errorf("concordance failed: %w", err)
	}

	if len(entries) == 0 {
		cmd.Printf("No matches for %q.\n", args[0])
		return nil
	}

	for i := range entries {
		cmd.Printf("%s%s%s\n",
			entries[i].Left,
			matchStyle.Render(entries[i].Match),
			entries[i].Right)
		cmd.Printf("  %s\n", mutedStyle.Render(fmt.Sprintf("chunk=%s source=%s", entries[i].ChunkID, entries[i].SourceLabel)))
	}

	cmd.Printf("\nTotal: %d matches\n", len(entries))
	return nil
}
