package driving

import (
	"context"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

// AskService answers questions from the ingested corpus.
type AskService interface {
	// Retrieve returns the top-k most similar chunks for a question,
	// best match first. k is clamped to a minimum of 1. An empty
	// collection yields an empty slice, never an error.
	Retrieve(ctx context.Context, question string, k int) ([]domain.RetrievedChunk, error)

	// Answer retrieves context for the question and prompts the
	// generation service with it. It always returns displayable text:
	// an empty corpus yields a fixed "ingest first" notice, and any
	// service failure is rendered as a human-readable error message
	// rather than propagated.
	Answer(ctx context.Context, question string, topK int) string
}
