// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Source document persistence
//   - ChunkStore: Chunk persistence (replaced wholesale per segmentation pass)
//   - IDGenerator: Identifier generation for documents and chunks
//   - ConfigStore: Application configuration
//
// # External Collaborators
//
//   - Enricher: LLM-backed thematic/sentiment analysis. The pipeline
//     produces chunks for it and merges its annotations back by chunk id.
//     No adapter ships in this repository.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
