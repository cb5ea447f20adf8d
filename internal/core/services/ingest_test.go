package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/idgen"
	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpus-cli/internal/core/domain"
)

func newIngestService() (*IngestionService, *memory.DocumentStore) {
	docStore := memory.NewDocumentStore()
	return NewIngestionService(docStore, idgen.NewSequential("doc")), docStore
}

func TestIngestionService_Ingest_Markdown(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	doc, err := svc.Ingest(ctx, "guide.md", "# Guide\n\nSome text.")
	require.NoError(t, err)
	assert.Equal(t, "doc-1", doc.ID)
	assert.Equal(t, domain.KindMarkdown, doc.Kind)
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestIngestionService_Ingest_Tabular(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	doc, err := svc.Ingest(ctx, "survey.csv", "name,comment\nAda,Great\nBob,Fine")
	require.NoError(t, err)
	assert.Equal(t, domain.KindTabular, doc.Kind)
	assert.Equal(t, []string{"name", "comment"}, doc.TableHeaders)
}

func TestIngestionService_Ingest_PlainByContent(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	doc, err := svc.Ingest(ctx, "notes.txt", "Just some plain text here.")
	require.NoError(t, err)
	assert.Equal(t, domain.KindPlain, doc.Kind)
}

func TestIngestionService_Ingest_EmptyContent(t *testing.T) {
	svc, _ := newIngestService()

	_, err := svc.Ingest(context.Background(), "empty.txt", "   \n\t ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIngestionService_Ingest_DefaultsPastedName(t *testing.T) {
	svc, _ := newIngestService()

	doc, err := svc.Ingest(context.Background(), "", "pasted content")
	require.NoError(t, err)
	assert.Equal(t, PastedName, doc.Name)
}

func TestIngestionService_List_IngestionOrder(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	_, _ = svc.Ingest(ctx, "first.txt", "one")
	_, _ = svc.Ingest(ctx, "second.txt", "two")
	_, _ = svc.Ingest(ctx, "third.txt", "three")

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "first.txt", docs[0].Name)
	assert.Equal(t, "third.txt", docs[2].Name)
}

func TestIngestionService_Delete(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	doc, _ := svc.Ingest(ctx, "a.txt", "content")

	err := svc.Delete(ctx, doc.ID)
	require.NoError(t, err)

	_, err = svc.Get(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngestionService_Delete_NotFound(t *testing.T) {
	svc, _ := newIngestService()

	err := svc.Delete(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIngestionService_SuggestColumns(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	content := "RespondentID,Comments\n" +
		"r1,The onboarding flow was confusing and took far too long to finish\n" +
		"r2,Really impressed with the support team and their quick responses\n" +
		"r3,Pricing feels steep for what the basic tier actually includes"
	doc, err := svc.Ingest(ctx, "survey.csv", content)
	require.NoError(t, err)

	cfg, err := svc.SuggestColumns(ctx, doc.ID)
	require.NoError(t, err)
	assert.Contains(t, cfg.TargetColumns, "Comments")
	assert.NotContains(t, cfg.TargetColumns, "RespondentID")
}

func TestIngestionService_SuggestColumns_NotTabular(t *testing.T) {
	svc, _ := newIngestService()
	ctx := context.Background()

	doc, _ := svc.Ingest(ctx, "notes.txt", "plain text")

	_, err := svc.SuggestColumns(ctx, doc.ID)
	assert.ErrorIs(t, err, domain.ErrNotTabular)
}
