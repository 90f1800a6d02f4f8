package domain

import "fmt"

// Document represents a source file loaded for ingestion.
// It is ephemeral: documents exist only while the index is being built,
// and are not persisted themselves. Only their chunks are.
type Document struct {
	// ID is a unique identifier assigned at load time.
	ID string

	// Source is the file basename (e.g. "partner_faq.txt").
	Source string

	// Path is the full path the file was loaded from.
	Path string

	// Content is the full normalised text of the file.
	Content string
}

// Chunk represents a retrieval unit: a contiguous slice of a document's
// text together with where it came from.
type Chunk struct {
	// ID identifies the chunk within the collection.
	// It is deterministic: "<source>-<index>".
	ID string

	// Source is the basename of the originating file.
	Source string

	// Path is the full path of the originating file.
	Path string

	// Index is the zero-based extraction order within the document.
	Index int

	// Content is the chunk text.
	Content string

	// Embedding is the vector representation used for similarity search.
	Embedding []float32
}

// ChunkID builds the deterministic identity key for a chunk.
// Re-ingesting the same file produces the same ids, so the collection
// must be cleared (or upserted) to avoid silent collisions.
func ChunkID(source string, index int) string {
	return fmt.Sprintf("%s-%d", source, index)
}

// RetrievedChunk is a single similarity-query hit.
type RetrievedChunk struct {
	// Chunk is the matched chunk, embedding included.
	Chunk Chunk

	// Similarity is the cosine similarity score against the query.
	Similarity float64
}

// IngestStats reports the outcome of an ingestion run.
type IngestStats struct {
	// Files is the number of matching files found, including any that
	// were skipped as unreadable.
	Files int

	// Chunks is the number of chunks written to the collection.
	Chunks int
}
