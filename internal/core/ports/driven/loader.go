package driven

import (
	"context"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

// DocumentLoader discovers and reads source files for ingestion.
type DocumentLoader interface {
	// Scan recursively lists the files under root that the loader can
	// handle (plain text and PDF). Paths are returned in walk order.
	Scan(root string) ([]string, error)

	// Load reads and extracts text from a single file, producing a
	// normalised Document. Extraction failures return an error; the
	// caller decides whether to skip or abort.
	Load(ctx context.Context, path string) (*domain.Document, error)
}
