package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

var (
	annotateTags      []string
	annotateSentiment string
	annotateAnalysis  string
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [chunk-id]",
	Short: "Merge enrichment onto a chunk",
	Long: `Attaches tags, sentiment, or analysis text to a stored chunk.
Fields not given are left as they are, so external enrichment results
can be merged incrementally.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().StringSliceVar(&annotateTags, "tags", nil, "thematic tags")
	annotateCmd.Flags().StringVar(&annotateSentiment, "sentiment", "", "sentiment label")
	annotateCmd.Flags().StringVar(&annotateAnalysis, "analysis", "", "free-form analysis text")
	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if segmentationService == nil {
		return errors.New("segmentation service not configured")
	}

	e := domain.Enrichment{
		Tags:      annotateTags,
		Sentiment: annotateSentiment,
		Analysis:  annotateAnalysis,
	}

	chunk, err := segmentationService.Annotate(context.Background(), args[0], e)
	if err != nil {
		return fmt.Errorf("failed to annotate chunk: %w", err)
	}

	cmd.Printf("Chunk %s annotated.\n", chunk.ID)
	if len(chunk.Tags) > 0 {
		cmd.Printf("  Tags: %v\n", chunk.Tags)
	}
	if chunk.Sentiment != "" {
		cmd.Printf("  Sentiment: %s\n", chunk.Sentiment)
	}
	if chunk.Analysis != "" {
		cmd.Printf("  Analysis: %s\n", chunk.Analysis)
	}
	return nil
}
