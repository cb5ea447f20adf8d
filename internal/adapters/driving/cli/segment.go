package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driving"
)

var (
	segmentGranularity string
	segmentHierarchy   bool
	segmentLevel       int
	segmentTargets     []string
	segmentContext     []string
	segmentSentiment   []string
	segmentStrategy    string
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Split all documents into chunks",
	Long: `Runs a segmentation pass over every ingested document and replaces
the stored chunk sequence. Tabular documents use explicit column roles
when given, otherwise the column advisor decides per document.`,
	Args: cobra.NoArgs,
	RunE: runSegment,
}

func init() {
	segmentCmd.Flags().StringVarP(&segmentGranularity, "granularity", "g", "paragraph",
		"splitting strategy (document, paragraph, sentence, line, section, subsection, turn, phrase, response)")
	segmentCmd.Flags().BoolVar(&segmentHierarchy, "hierarchical", false, "split at a heading level first")
	segmentCmd.Flags().IntVarP(&segmentLevel, "level", "l", 0, "heading level for hierarchical splitting (default: suggested)")
	segmentCmd.Flags().StringSliceVar(&segmentTargets, "target", nil, "target columns for tabular documents")
	segmentCmd.Flags().StringSliceVar(&segmentContext, "context", nil, "context columns for tabular documents")
	segmentCmd.Flags().StringSliceVar(&segmentSentiment, "sentiment-context", nil, "sentiment context columns for tabular documents")
	segmentCmd.Flags().StringVar(&segmentStrategy, "strategy", "", "tabular strategy (combine or distinct)")
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, _ []string) error {
	if segmentationService == nil {
		return errors.New("segmentation service not configured")
	}

	req := driving.SegmentRequest{
		Granularity:  domain.Granularity(segmentGranularity),
		Hierarchical: segmentHierarchy,
		HeaderLevel:  segmentLevel,
	}

	if cols := columnOverride(); cols != nil {
		req.Columns = cols
	}

	chunks, err := segmentationService.Segment(context.Background(), req)
	if err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}

	cmd.Printf("Produced %d chunks.\n", len(chunks))
	return nil
}

// columnOverride builds an explicit column role config from flags, or
// nil when no tabular flag was given.
func columnOverride() *domain.ColumnRoleConfig {
	if len(segmentTargets) == 0 && len(segmentContext) == 0 &&
		len(segmentSentiment) == 0 && segmentStrategy == "" {
		return nil
	}

	strategy := domain.ColumnStrategy(segmentStrategy)
	if segmentStrategy == "" {
		strategy = domain.StrategyDistinct
	}

	return &domain.ColumnRoleConfig{
		TargetColumns:           segmentTargets,
		ContextColumns:          segmentContext,
		SentimentContextColumns: segmentSentiment,
		Strategy:                strategy,
	}
}
