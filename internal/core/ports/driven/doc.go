// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): the embedding service, the generation
// service, the vector store, and the document loader. Core services
// depend on these interfaces; concrete implementations live under
// internal/adapters/driven and internal/loader.
package driven
