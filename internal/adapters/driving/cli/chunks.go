package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

var chunksJSON bool

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "List the chunks of the last segmentation pass",
	Args:  cobra.NoArgs,
	RunE:  runChunks,
}

func init() {
	chunksCmd.Flags().BoolVar(&chunksJSON, "json", false, "output chunks as JSON")
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, _ []string) error {
	if segmentationService == nil {
		return errors.New("segmentation service not configured")
	}

	chunks, err := segmentationService.Chunks(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list chunks: %w", err)
	}

	if chunksJSON {
		return outputChunksJSON(cmd, chunks)
	}
	return outputChunksList(cmd, chunks)
}

func outputChunksJSON(cmd *cobra.Command, chunks []domain.Chunk) error {
	if chunks == nil {
		chunks = []domain.Chunk{}
	}
	data, err := json.MarshalIndent(chunks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal chunks: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputChunksList(cmd *cobra.Command, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		cmd.Println("No chunks. Run 'corpus segment' first.")
		return nil
	}

	for i := range chunks {
		cmd.Printf("%s %s\n",
			titleStyle.Render(fmt.Sprintf("[%d]", chunks[i].Position)),
			labelStyle.Render(chunks[i].SourceLabel))
		cmd.Printf("  %s\n", mutedStyle.Render(fmt.Sprintf("id=%s granularity=%s", chunks[i].ID, chunks[i].Granularity)))
		cmd.Printf("  %s\n", chunks[i].Text)
		if len(chunks[i].Tags) > 0 {
			cmd.Printf("  Tags: %v\n", chunks[i].Tags)
		}
		if chunks[i].Sentiment != "" {
			cmd.Printf("  Sentiment: %s\n", chunks[i].Sentiment)
		}
		if chunks[i].Analysis != "" {
			cmd.Printf("  Analysis: %s\n", chunks[i].Analysis)
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d chunks\n", len(chunks))
	return nil
}
