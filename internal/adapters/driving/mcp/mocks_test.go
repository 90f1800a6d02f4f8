package mcp

import (
	"context"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

// mockAskService is a mock implementation of driving.AskService.
type mockAskService struct {
	answer      string
	hits        []domain.RetrievedChunk
	retrieveErr error

	lastQuestion string
	lastK        int
}

func (m *mockAskService) Retrieve(
	_ context.Context,
	question string,
	k int,
) ([]domain.RetrievedChunk, error) {
	m.lastQuestion = question
	m.lastK = k
	return m.hits, m.retrieveErr
}

func (m *mockAskService) Answer(_ context.Context, question string, topK int) string {
	m.lastQuestion = question
	m.lastK = topK
	return m.answer
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	stats   domain.IngestStats
	err     error
	lastDir string
}

func (m *mockIngestService) Ingest(_ context.Context, docsDir string) (domain.IngestStats, error) {
	m.lastDir = docsDir
	return m.stats, m.err
}
