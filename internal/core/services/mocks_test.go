package services

import (
	"context"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driven"
)

// fakeEmbedder produces deterministic bag-of-words vectors so similar
// texts land near each other without a real model.
type fakeEmbedder struct {
	calls []string
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, text)

	vec := make([]float32, 32)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(strings.Trim(word, ".,?!")))
		vec[h.Sum32()%32]++
	}
	return vec, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Dimensions() int              { return 32 }
func (f *fakeEmbedder) ModelName() string            { return "fake-embed" }
func (f *fakeEmbedder) Ping(_ context.Context) error { return nil }
func (f *fakeEmbedder) Close() error                 { return nil }

// fakeLLM records prompts and returns a canned response or error.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) ModelName() string            { return "fake-llm" }
func (f *fakeLLM) Ping(_ context.Context) error { return nil }
func (f *fakeLLM) Close() error                 { return nil }

// fakeStore is an in-memory vector store with cosine ranking.
type fakeStore struct {
	chunks   []domain.Chunk
	clearErr error
	queryErr error
	cleared  int
}

func (f *fakeStore) Add(_ context.Context, chunks []domain.Chunk) error {
	f.chunks = append(f.chunks, chunks...)
	return nil
}

func (f *fakeStore) Query(_ context.Context, embedding []float32, k int) ([]domain.RetrievedChunk, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if k < 1 {
		k = 1
	}

	hits := make([]domain.RetrievedChunk, 0, len(f.chunks))
	for _, c := range f.chunks {
		hits = append(hits, domain.RetrievedChunk{Chunk: c, Similarity: cosine(embedding, c.Embedding)})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Similarity > hits[j].Similarity })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

func (f *fakeStore) Clear(_ context.Context) error {
	f.cleared++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.chunks = nil
	return nil
}

func (f *fakeStore) Count(_ context.Context) (int, error) { return len(f.chunks), nil }
func (f *fakeStore) Close() error                         { return nil }

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
