package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

var ngramsCmd = &cobra.Command{
	Use:   "ngrams",
	Short: "Show the most frequent bigrams and trigrams",
	Long: `Counts word pairs and triples across the stored chunk sequence,
skipping any n-gram that contains a stop word.`,
	Args: cobra.NoArgs,
	RunE: runNGrams,
}

func init() {
	rootCmd.AddCommand(ngramsCmd)
}

func runNGrams(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errors.New("analytics service not configured")
	}

	report, err := analyticsService.TopNGrams(context.Background())
	if err != nil {
		return fmt.Errorf("n-gram extraction failed: %w", err)
	}

	printNGrams(cmd, "Bigrams", report.Bigrams)
	cmd.Println()
	printNGrams(cmd, "Trigrams", report.Trigrams)
	return nil
}

func printNGrams(cmd *cobra.Command, title string, grams []domain.NGram) {
	cmd.Println(titleStyle.Render(title + ":"))
	if len(grams) == 0 {
		cmd.Println("  (none)")
		return
	}
	for _, g := range grams {
		cmd.Printf("  %4d  %s\n", g.Count, g.Text)
	}
}
