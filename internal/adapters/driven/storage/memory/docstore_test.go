package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

func TestNewDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.documents)
}

func TestDocumentStore_SaveDocument_Success(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := &domain.SourceDocument{
		ID:        "doc-1",
		Name:      "notes.md",
		Content:   "# Notes\n\nSome text.",
		Kind:      domain.KindMarkdown,
		CreatedAt: time.Now(),
	}

	err := store.SaveDocument(ctx, doc)
	require.NoError(t, err)

	saved, err := store.GetDocument(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", saved.ID)
	assert.Equal(t, "notes.md", saved.Name)
	assert.Equal(t, domain.KindMarkdown, saved.Kind)
}

func TestDocumentStore_SaveDocument_UpdateKeepsOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	_ = store.SaveDocument(ctx, &domain.SourceDocument{ID: "doc-1", Name: "a.txt"})
	_ = store.SaveDocument(ctx, &domain.SourceDocument{ID: "doc-2", Name: "b.txt"})
	_ = store.SaveDocument(ctx, &domain.SourceDocument{ID: "doc-1", Name: "a-renamed.txt"})

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-1", docs[0].ID)
	assert.Equal(t, "a-renamed.txt", docs[0].Name)
	assert.Equal(t, "doc-2", docs[1].ID)
}

func TestDocumentStore_GetDocument_NotFound(t *testing.T) {
	store := NewDocumentStore()

	doc, err := store.GetDocument(context.Background(), "nonexistent")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, doc)
}

func TestDocumentStore_ListDocuments_IngestionOrder(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	ids := []string{"doc-3", "doc-1", "doc-2"}
	for _, id := range ids {
		_ = store.SaveDocument(ctx, &domain.SourceDocument{ID: id})
	}

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, id := range ids {
		assert.Equal(t, id, docs[i].ID)
	}
}

func TestDocumentStore_ListDocuments_Empty(t *testing.T) {
	store := NewDocumentStore()

	docs, err := store.ListDocuments(context.Background())

	require.NoError(t, err)
	assert.Nil(t, docs)
}

func TestDocumentStore_DeleteDocument(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	_ = store.SaveDocument(ctx, &domain.SourceDocument{ID: "doc-1"})
	_ = store.SaveDocument(ctx, &domain.SourceDocument{ID: "doc-2"})

	err := store.DeleteDocument(ctx, "doc-1")
	require.NoError(t, err)

	_, err = store.GetDocument(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "doc-2", docs[0].ID)
}

func TestDocumentStore_DeleteDocument_NonExistent(t *testing.T) {
	store := NewDocumentStore()

	err := store.DeleteDocument(context.Background(), "nonexistent")
	assert.NoError(t, err)
}

func TestDocumentStore_Concurrency(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			doc := &domain.SourceDocument{ID: "doc-" + string(rune('A'+id))}
			_ = store.SaveDocument(ctx, doc)
		}(i)
	}
	wg.Wait()

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_, _ = store.GetDocument(ctx, "doc-"+string(rune('A'+id)))
			_, _ = store.ListDocuments(ctx)
		}(i)
	}
	wg.Wait()

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, numGoroutines)
}
