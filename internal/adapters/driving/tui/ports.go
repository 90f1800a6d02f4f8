// Package tui provides the interactive chat interface for askdocs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driving"
)

// ErrNoAskService is returned when the chat is created without an ask service.
var ErrNoAskService = errors.New("tui: ask service is required")

// Ports aggregates the driving port interfaces required by the chat UI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Ask answers questions against the indexed documents.
	Ask driving.AskService

	// TopK is the default number of chunks retrieved per question.
	TopK int
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Ask == nil {
		return ErrNoAskService
	}
	return nil
}
