package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driven"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driving"
	"github.com/custodia-labs/askdocs-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// systemPrompt keeps responses concise and grounded in retrieved context.
const systemPrompt = "You are a precise Partner Program assistant." +
	" Answer ONLY using the provided context excerpts." +
	" If the answer is not in the context, say: 'I don't know based on the current documentation.'" +
	" Be concise and use bullet points. Include a short 'Sources' list with file names."

// noContextMessage is returned when the collection has nothing to offer.
const noContextMessage = "I couldn't retrieve any context. Please run `askdocs ingest` after placing " +
	"your documents under the docs directory, then try again."

// contextSeparator joins labelled excerpts in the prompt.
const contextSeparator = "\n\n---\n"

// AskService retrieves context for a question and composes a grounded
// answer via the generation service.
type AskService struct {
	store    driven.VectorStore
	embedder driven.EmbeddingService
	llm      driven.LLMService
}

// NewAskService creates a new ask service.
func NewAskService(
	store driven.VectorStore,
	embedder driven.EmbeddingService,
	llm driven.LLMService,
) *AskService {
	return &AskService{
		store:    store,
		embedder: embedder,
		llm:      llm,
	}
}

// Retrieve returns the top-k most similar chunks for a question, best
// match first. k is clamped to a minimum of 1. An empty collection
// yields an empty slice, never an error.
func (s *AskService) Retrieve(ctx context.Context, question string, k int) ([]domain.RetrievedChunk, error) {
	logger.Section("Retrieval")

	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if k < 1 {
		k = 1
	}

	embedding, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	hits, err := s.store.Query(ctx, embedding, k)
	if err != nil {
		return nil, fmt.Errorf("querying collection: %w", err)
	}

	logger.Debug("Retrieved %d chunks for %q", len(hits), question)
	return hits, nil
}

// Answer composes a grounded answer for the question. It always returns
// displayable text: an empty corpus yields a fixed notice, and any
// service failure is rendered as a human-readable message with the
// underlying error embedded, never propagated.
func (s *AskService) Answer(ctx context.Context, question string, topK int) string {
	hits, err := s.Retrieve(ctx, question, topK)
	if err != nil {
		return fmt.Sprintf("Retrieval failed. Check that Ollama is running and "+
			"OLLAMA_HOST/OLLAMA_EMBED_MODEL are set.\n\nError: %v", err)
	}
	if len(hits) == 0 {
		return noContextMessage
	}

	prompt := buildPrompt(question, hits)
	logger.Debug("Prompt length: %d characters", len(prompt))

	if s.llm == nil {
		return fmt.Sprintf("LLM call failed. Check that Ollama is running and "+
			"OLLAMA_HOST/OLLAMA_MODEL are set.\n\nError: %v", domain.ErrLLMUnavailable)
	}

	answer, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{})
	if err != nil {
		return fmt.Sprintf("LLM call failed. Check that Ollama is running and "+
			"OLLAMA_HOST/OLLAMA_MODEL are set.\n\nError: %v", err)
	}
	return answer
}

// buildPrompt assembles the full generation prompt: system instruction,
// labelled context block, the question, a formatting directive, and the
// final answer cue.
func buildPrompt(question string, hits []domain.RetrievedChunk) string {
	labelled := make([]string, len(hits))
	for i, hit := range hits {
		labelled[i] = fmt.Sprintf("[From %s]:\n%s", hit.Chunk.Source, hit.Chunk.Content)
	}
	contextBlock := strings.Join(labelled, contextSeparator)

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	b.WriteString("Context excerpts:\n")
	b.WriteString(contextBlock)
	b.WriteString("\n\n")
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString("Answer in bullets. Then add a 'Sources' list with the file names only.")
	b.WriteString("\n\nAnswer:")
	return b.String()
}
