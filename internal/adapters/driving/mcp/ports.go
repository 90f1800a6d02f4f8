package mcp

import (
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions against the indexed documents.
	Ask driving.AskService

	// Ingest rebuilds the index. Optional; the ingest tool is only
	// registered when it is set.
	Ingest driving.IngestService

	// TopK is the default number of chunks retrieved per question.
	TopK int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Ask == nil {
		return ErrMissingAskService
	}
	return nil
}
