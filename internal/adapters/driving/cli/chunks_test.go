package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunksCmd_Use(t *testing.T) {
	assert.Equal(t, "chunks", chunksCmd.Use)
}

func TestChunksCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("chunks")

	require.NoError(t, err)
	assert.Contains(t, out, "No chunks")
}

func TestChunksCmd_ListsChunks(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetSegmentFlags()

	ingestFixture("a.txt", "One.\n\nTwo.")
	_, err := execute("segment")
	require.NoError(t, err)

	out, err := execute("chunks")

	require.NoError(t, err)
	assert.Contains(t, out, "One.")
	assert.Contains(t, out, "Two.")
	assert.Contains(t, out, "Total: 2 chunks")
}

func TestChunksCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetSegmentFlags()
	defer func() { chunksJSON = false }()

	ingestFixture("a.txt", "Only paragraph.")
	_, err := execute("segment")
	require.NoError(t, err)

	out, err := execute("chunks", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, `"text": "Only paragraph."`)
	assert.Contains(t, out, `"granularity": "paragraph"`)
}

func TestChunksCmd_JSONEmpty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer func() { chunksJSON = false }()

	out, err := execute("chunks", "--json")

	require.NoError(t, err)
	assert.Contains(t, out, "[]")
}
