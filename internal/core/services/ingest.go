package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/askdocs-cli/internal/chunker"
	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driving"
	"github.com/custodia-labs/askdocs-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the persistent chunk collection: it scans the
// docs directory, loads and chunks each file, embeds every chunk, and
// replaces the collection contents in one bulk write.
type IngestService struct {
	loader   driven.DocumentLoader
	chunker  *chunker.Chunker
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	loader driven.DocumentLoader,
	ch *chunker.Chunker,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
) *IngestService {
	return &IngestService{
		loader:   loader,
		chunker:  ch,
		embedder: embedder,
		store:    store,
	}
}

// Ingest performs a full refresh of the collection from docsDir.
// The returned stats count matching files (including skipped ones, so a
// re-run after fixing a bad file reports the same file total) and the
// chunks written.
func (s *IngestService) Ingest(ctx context.Context, docsDir string) (domain.IngestStats, error) {
	logger.Section("Ingestion")

	var stats domain.IngestStats

	if s.store == nil {
		return stats, domain.ErrStoreUnavailable
	}
	if s.embedder == nil {
		return stats, domain.ErrEmbeddingUnavailable
	}

	files, err := s.loader.Scan(docsDir)
	if err != nil {
		return stats, fmt.Errorf("scanning docs: %w", err)
	}
	stats.Files = len(files)
	logger.Debug("Found %d matching files under %s", len(files), docsDir)

	// Full-refresh semantics: drop everything before re-adding. A clear
	// failure is swallowed; an empty store is an acceptable start state.
	if err := s.store.Clear(ctx); err != nil {
		logger.Debug("Clearing collection failed (continuing): %v", err)
	}

	var chunks []domain.Chunk
	for _, path := range files {
		doc, err := s.loader.Load(ctx, path)
		if err != nil {
			logger.Warn("[skip] %s: %v", path, err)
			continue
		}

		for i, text := range s.chunker.Split(doc.Content) {
			chunks = append(chunks, domain.Chunk{
				ID:      domain.ChunkID(doc.Source, i),
				Source:  doc.Source,
				Path:    doc.Path,
				Index:   i,
				Content: text,
			})
		}
	}

	if len(chunks) == 0 {
		return stats, nil
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return stats, fmt.Errorf("embedding chunks: %w", err)
	}
	for i := range chunks {
		chunks[i].Embedding = embeddings[i]
	}

	// One bulk write for the whole run, not per chunk.
	if err := s.store.Add(ctx, chunks); err != nil {
		return stats, fmt.Errorf("storing chunks: %w", err)
	}

	stats.Chunks = len(chunks)
	logger.Info("Indexed %d chunks from %d files", stats.Chunks, stats.Files)
	return stats, nil
}
