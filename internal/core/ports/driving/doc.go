// Package driving defines the interfaces through which external actors
// drive the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI adapter calls them.
//
//   - IngestService: Document ingestion and classification
//   - OutlineService: Heading index and split-level suggestion
//   - SegmentationService: Chunk production and enrichment merge
//   - AnalyticsService: N-gram and concordance exploration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service implementation package
package driving
