package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/idgen"
	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/corpus-cli/internal/core/services"
)

// testStores holds the in-memory adapters behind the injected services.
type testStores struct {
	docs   *memory.DocumentStore
	chunks *memory.ChunkStore
	config *memory.ConfigStore
}

// setupTestServices wires all commands to in-memory backends and
// returns the stores plus a cleanup restoring the previous wiring.
func setupTestServices() (*testStores, func()) {
	oldIngest := ingestService
	oldSegmentation := segmentationService
	oldOutline := outlineService
	oldAnalytics := analyticsService
	oldInitialized := servicesInitialized

	stores := &testStores{
		docs:   memory.NewDocumentStore(),
		chunks: memory.NewChunkStore(),
		config: memory.NewConfigStore(),
	}

	ids := idgen.NewSequential("id")
	ingestService = services.NewIngestionService(stores.docs, ids)
	segmentationService = services.NewSegmentationOrchestrator(stores.docs, stores.chunks, ids)
	outlineService = services.NewOutlineAnalyzer(stores.docs)
	analyticsService = services.NewAnalyticsOrchestrator(stores.chunks, stores.config)
	servicesInitialized = true

	return stores, func() {
		ingestService = oldIngest
		segmentationService = oldSegmentation
		outlineService = oldOutline
		analyticsService = oldAnalytics
		servicesInitialized = oldInitialized
	}
}

// execute runs the root command with args and returns combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// ingestFixture stores a document through the wired ingest service.
func ingestFixture(name, content string) string {
	doc, err := ingestService.Ingest(context.Background(), name, content)
	if err != nil {
		panic(err)
	}
	return doc.ID
}
