// Package chunker provides fixed-size sliding-window text splitting.
package chunker

import "strings"

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 800

// DefaultChunkOverlap is the default number of overlapping characters
// between consecutive chunks. Overlap keeps context continuity across
// chunk boundaries.
const DefaultChunkOverlap = 120

// Chunker splits text into overlapping fixed-size slices. Boundaries are
// character positions: no sentence or token awareness, chunks may split
// words. Splitting is a pure function of its input.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between chunks in characters.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Ensure overlap doesn't exceed chunk size
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}

	return c
}

// ChunkSize returns the configured chunk size.
func (c *Chunker) ChunkSize() int {
	return c.chunkSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}

// Split cuts text into ordered chunks. Each chunk is at most chunkSize
// characters; consecutive chunks share overlap characters. Slices that
// are empty after whitespace trimming are dropped, so indexes into the
// returned slice are the extraction order of kept chunks only.
func (c *Chunker) Split(text string) []string {
	if text == "" {
		return nil
	}

	// Slice by runes so multibyte characters are never cut in half.
	runes := []rune(text)
	n := len(runes)

	// The step must be at least 1 or the window never advances.
	step := c.chunkSize - c.overlap
	if step < 1 {
		step = 1
	}

	chunks := make([]string, 0, n/step+1)
	for start := 0; start < n; start += step {
		end := start + c.chunkSize
		if end > n {
			end = n
		}

		chunk := string(runes[start:end])
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
	}

	return chunks
}
