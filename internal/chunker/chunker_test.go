package chunker

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		c := New()
		if c.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, c.chunkSize)
		}
		if c.overlap != DefaultChunkOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultChunkOverlap, c.overlap)
		}
	})

	t.Run("custom chunk size", func(t *testing.T) {
		c := New(WithChunkSize(500))
		if c.chunkSize != 500 {
			t.Errorf("expected chunkSize 500, got %d", c.chunkSize)
		}
	})

	t.Run("custom overlap", func(t *testing.T) {
		c := New(WithOverlap(100))
		if c.overlap != 100 {
			t.Errorf("expected overlap 100, got %d", c.overlap)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		c := New(WithChunkSize(100), WithOverlap(150))
		if c.overlap >= c.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		c := New(WithChunkSize(0), WithOverlap(-1))
		if c.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", c.chunkSize)
		}
		if c.overlap != DefaultChunkOverlap {
			t.Errorf("expected default overlap, got %d", c.overlap)
		}
	})
}

func TestSplit_Empty(t *testing.T) {
	c := New()
	if chunks := c.Split(""); len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty text, got %d", len(chunks))
	}
}

func TestSplit_SmallText(t *testing.T) {
	c := New(WithChunkSize(100), WithOverlap(20))
	chunks := c.Split("This is a small piece of content.")

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk for small text, got %d", len(chunks))
	}
	if chunks[0] != "This is a small piece of content." {
		t.Errorf("expected chunk to match input, got %q", chunks[0])
	}
}

func TestSplit_ExactChunkSize(t *testing.T) {
	c := New(WithChunkSize(50), WithOverlap(10))

	chunks := c.Split(strings.Repeat("a", 50))
	if len(chunks) != 1 {
		t.Errorf("expected exactly 1 chunk for size-length text, got %d", len(chunks))
	}
}

func TestSplit_TwoChunks(t *testing.T) {
	// Text of length 2*size - overlap fills exactly two windows.
	c := New(WithChunkSize(50), WithOverlap(10))

	chunks := c.Split(strings.Repeat("a", 90))
	if len(chunks) != 2 {
		t.Errorf("expected exactly 2 chunks, got %d", len(chunks))
	}
}

func TestSplit_NoChunkExceedsSize(t *testing.T) {
	c := New(WithChunkSize(64), WithOverlap(16))

	chunks := c.Split(strings.Repeat("word ", 200))
	for i, chunk := range chunks {
		if len([]rune(chunk)) > 64 {
			t.Errorf("chunk %d exceeds size: %d chars", i, len([]rune(chunk)))
		}
	}
}

func TestSplit_OverlapContent(t *testing.T) {
	c := New(WithChunkSize(10), WithOverlap(3))

	// With size 10 and overlap 3, step is 7:
	// chunks start at offsets 0, 7, 14.
	chunks := c.Split("0123456789ABCDEFGHIJ")
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	if chunks[0] != "0123456789" {
		t.Errorf("unexpected first chunk %q", chunks[0])
	}
	if chunks[1] != "789ABCDEFG" {
		t.Errorf("unexpected second chunk %q", chunks[1])
	}
	if chunks[2] != "EFGHIJ" {
		t.Errorf("unexpected final chunk %q", chunks[2])
	}
}

func TestSplit_EveryCharacterCovered(t *testing.T) {
	c := New(WithChunkSize(32), WithOverlap(8))
	text := "The quick brown fox jumps over the lazy dog, twice, for luck."

	chunks := c.Split(text)
	joined := strings.Join(chunks, "")
	for _, r := range text {
		if strings.TrimSpace(string(r)) == "" {
			continue
		}
		if !strings.ContainsRune(joined, r) {
			t.Errorf("character %q missing from all chunks", r)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	c := New(WithChunkSize(20), WithOverlap(5))
	text := strings.Repeat("deterministic input ", 10)

	first := c.Split(text)
	second := c.Split(text)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestSplit_WhitespaceOnlyChunksDropped(t *testing.T) {
	c := New(WithChunkSize(5), WithOverlap(0))

	// Middle window is all spaces and must be dropped.
	chunks := c.Split("aaaaa     bbbbb")
	for i, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			t.Errorf("chunk %d is whitespace only: %q", i, chunk)
		}
	}
	if len(chunks) != 2 {
		t.Errorf("expected 2 kept chunks, got %d", len(chunks))
	}
}

func TestSplit_DegenerateOverlapTerminates(t *testing.T) {
	// overlap >= size is repaired by New, but even a hand-built chunker
	// with a non-positive step must advance by at least one character.
	c := &Chunker{chunkSize: 4, overlap: 4}

	chunks := c.Split("abcdefgh")
	if len(chunks) == 0 {
		t.Fatal("expected chunks from degenerate configuration")
	}
	if len(chunks) != 8 {
		t.Errorf("expected step of 1 to yield 8 chunks, got %d", len(chunks))
	}
}

func TestSplit_MultibyteRunesNotSplit(t *testing.T) {
	c := New(WithChunkSize(4), WithOverlap(0))

	chunks := c.Split("héllo wörld")
	for i, chunk := range chunks {
		if !strings.ContainsRune("héllo wörld", []rune(chunk)[0]) {
			t.Errorf("chunk %d starts with mangled rune: %q", i, chunk)
		}
		if len([]rune(chunk)) > 4 {
			t.Errorf("chunk %d exceeds 4 runes: %q", i, chunk)
		}
	}
}
