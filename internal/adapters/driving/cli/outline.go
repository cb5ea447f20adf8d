package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Show the Markdown heading index",
	Long: `Scans every non-tabular document for Markdown headings and prints
the index by level, plus the suggested level to split on.`,
	Args: cobra.NoArgs,
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, _ []string) error {
	if outlineService == nil {
		return errors.New("outline service not configured")
	}

	ctx := context.Background()
	index, err := outlineService.HeadingIndex(ctx)
	if err != nil {
		return fmt.Errorf("failed to build heading index: %w", err)
	}

	suggested, err := outlineService.SuggestSplitLevel(ctx)
	if err != nil {
		return fmt.Errorf("failed to suggest split level: %w", err)
	}

	cmd.Println(titleStyle.Render("Heading index:"))
	empty := true
	for level := domain.MinHeadingLevel; level <= domain.MaxHeadingLevel; level++ {
		titles := index.TitlesAt(level)
		if len(titles) == 0 {
			continue
		}
		empty = false
		cmd.Printf("\n  Level %d (%d):\n", level, len(titles))
		for _, title := range titles {
			cmd.Printf("    %s\n", title)
		}
	}
	if empty {
		cmd.Println("  (no headings found)")
	}

	cmd.Printf("\nSuggested split level: %d\n", suggested)
	return nil
}
