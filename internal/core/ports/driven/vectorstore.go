package driven

import (
	"context"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

// VectorStore is the persistent chunk collection.
// Backed by SQLite; survives process restarts. Opened once at process
// start and closed at shutdown, never per call.
type VectorStore interface {
	// Add upserts a batch of chunks in a single transaction.
	// Chunks with colliding ids replace the stored record.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Query returns up to k chunks ordered by descending cosine
	// similarity to the query embedding. An empty collection yields an
	// empty slice, not an error.
	Query(ctx context.Context, embedding []float32, k int) ([]domain.RetrievedChunk, error)

	// Clear removes every chunk from the collection.
	Clear(ctx context.Context) error

	// Count reports the number of stored chunks.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying database handle.
	Close() error
}
