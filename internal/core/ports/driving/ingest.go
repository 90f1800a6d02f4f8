package driving

import (
	"context"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

// IngestService builds the persistent chunk collection from a docs
// directory. This is the only surface allowed to write to the store.
type IngestService interface {
	// Ingest scans docsDir, loads and chunks every matching file, and
	// replaces the collection contents with the result (full refresh).
	// Unreadable files are skipped with a warning; the run continues.
	Ingest(ctx context.Context, docsDir string) (domain.IngestStats, error)
}
