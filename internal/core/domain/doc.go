// Package domain defines the core business entities for askdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A loaded source file awaiting ingestion
//   - Chunk: A retrieval unit cut from a document
//   - RetrievedChunk: A chunk returned by a similarity query
//   - IngestStats: Counts reported after an ingestion run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
