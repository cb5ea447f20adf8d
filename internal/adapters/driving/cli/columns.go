package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns [doc-id]",
	Short: "Suggest column roles for a tabular document",
	Long: `Samples the document's rows and proposes which columns carry the
text to analyse, which provide context, and which carry sentiment
context. Purely advisory; pass explicit roles to 'corpus segment' to
override.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	cfg, err := ingestService.SuggestColumns(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to suggest columns: %w", err)
	}

	cmd.Println(titleStyle.Render("Suggested column roles:"))
	cmd.Println()
	printColumns(cmd, "Target", cfg.TargetColumns)
	printColumns(cmd, "Context", cfg.ContextColumns)
	printColumns(cmd, "Sentiment context", cfg.SentimentContextColumns)
	cmd.Printf("\nStrategy: %s\n", cfg.Strategy)
	return nil
}

func printColumns(cmd *cobra.Command, role string, cols []string) {
	if len(cols) == 0 {
		cmd.Printf("  %s: %s\n", role, mutedStyle.Render("(none)"))
		return
	}
	cmd.Printf("  %s:\n", role)
	for _, c := range cols {
		cmd.Printf("    %s\n", c)
	}
}
