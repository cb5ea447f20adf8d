package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNGramsCmd_Use(t *testing.T) {
	assert.Equal(t, "ngrams", ngramsCmd.Use)
}

func TestNGramsCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("ngrams")

	require.NoError(t, err)
	assert.Contains(t, out, "Bigrams:")
	assert.Contains(t, out, "Trigrams:")
	assert.Contains(t, out, "(none)")
}

func TestNGramsCmd_ShowsCounts(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	defer resetSegmentFlags()

	ingestFixture("a.txt", "fast delivery today\n\nfast delivery again")
	_, err := execute("segment")
	require.NoError(t, err)

	out, err := execute("ngrams")

	require.NoError(t, err)
	assert.Contains(t, out, "fast delivery")
	assert.Contains(t, out, "2")
}
