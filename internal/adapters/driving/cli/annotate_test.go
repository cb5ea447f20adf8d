package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAnnotateFlags() {
	annotateTags = nil
	annotateSentiment = ""
	annotateAnalysis = ""
}

func TestAnnotateCmd_Use(t *testing.T) {
	assert.Equal(t, "annotate [chunk-id]", annotateCmd.Use)
}

func TestAnnotateCmd_RequiresArg(t *testing.T) {
	_, err := execute("annotate")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAnnotateCmd_MergesEnrichment(t *testing.T) {
	stores, cleanup := setupTestServices()
	defer cleanup()
	defer resetSegmentFlags()
	defer resetAnnotateFlags()

	ingestFixture("a.txt", "Great product overall.")
	_, err := execute("segment")
	require.NoError(t, err)

	chunks, err := stores.chunks.ListChunks(context.Background())
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	out, err := execute("annotate", chunks[0].ID,
		"--tags", "praise",
		"--sentiment", "positive")

	require.NoError(t, err)
	assert.Contains(t, out, "annotated")
	assert.Contains(t, out, "praise")
	assert.Contains(t, out, "positive")

	stored, err := stores.chunks.GetChunk(context.Background(), chunks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"praise"}, stored.Tags)
	assert.Equal(t, "positive", stored.Sentiment)
}

func TestAnnotateCmd_UnknownChunk(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetAnnotateFlags()

	_, err := execute("annotate", "nonexistent", "--sentiment", "neutral")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to annotate chunk")
}
