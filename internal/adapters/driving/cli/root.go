// Package cli implements the corpus command-line interface using cobra.
// Commands are thin wrappers that call driving port services and format
// their results.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/idgen"
	"github.com/custodia-labs/corpus-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/corpus-cli/internal/core/ports/driving"
	"github.com/custodia-labs/corpus-cli/internal/core/services"
	"github.com/custodia-labs/corpus-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services the commands call. Wired in initServices, replaced directly
// by tests.
var (
	ingestService       driving.IngestService
	segmentationService driving.SegmentationService
	outlineService      driving.OutlineService
	analyticsService    driving.AnalyticsService
)

// servicesInitialized guards against re-wiring when tests inject their
// own services.
var servicesInitialized bool

var (
	verboseFlag bool
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Prepare text corpora for downstream analysis",
	Long: `Corpus ingests plain text, Markdown, and CSV sources, splits them
into analysable chunks at a chosen granularity, and provides lexical
exploration over the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default ~/.corpus/data)")
}

// initServices wires the default adapters into the core services.
func initServices() error {
	if servicesInitialized {
		return nil
	}

	store, err := sqlite.NewStore(dataDirFlag)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	ids := idgen.NewUUID()
	docStore := store.DocumentStore()
	chunkStore := store.ChunkStore()

	ingestService = services.NewIngestionService(docStore, ids)
	segmentationService = services.NewSegmentationOrchestrator(docStore, chunkStore, ids)
	outlineService = services.NewOutlineAnalyzer(docStore)
	analyticsService = services.NewAnalyticsOrchestrator(chunkStore, configStore)

	servicesInitialized = true
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
