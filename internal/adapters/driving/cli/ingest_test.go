package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
)

func TestIngestCmd_RequiresService(t *testing.T) {
	original := ingestService
	ingestService = nil
	defer func() { ingestService = original }()

	_, err := execute(t, "ingest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestIngestCmd_ReportsStats(t *testing.T) {
	original := ingestService
	mock := &mockIngestService{stats: domain.IngestStats{Files: 2, Chunks: 7}}
	ingestService = mock
	defer func() {
		ingestService = original
		ingestDocsDir = ""
	}()

	docsDir := t.TempDir()
	out, err := execute(t, "ingest", "--docs", docsDir)

	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 7 chunks from 2 files.")
	assert.Equal(t, docsDir, mock.lastDir)
}

func TestIngestCmd_NoDocumentsNotice(t *testing.T) {
	original := ingestService
	ingestService = &mockIngestService{}
	defer func() {
		ingestService = original
		ingestDocsDir = ""
	}()

	docsDir := t.TempDir()
	out, err := execute(t, "ingest", "--docs", docsDir)

	require.NoError(t, err)
	assert.Contains(t, out, "No documents found.")
}

func TestIngestCmd_SeedsSampleFAQ(t *testing.T) {
	original := ingestService
	ingestService = &mockIngestService{}
	defer func() {
		ingestService = original
		ingestDocsDir = ""
	}()

	docsDir := filepath.Join(t.TempDir(), "docs")
	_, err := execute(t, "ingest", "--docs", docsDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(docsDir, sampleFAQName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Partner Program FAQ")
}

func TestEnsureSampleCopy_DoesNotOverwrite(t *testing.T) {
	docsDir := t.TempDir()
	dst := filepath.Join(docsDir, sampleFAQName)
	require.NoError(t, os.WriteFile(dst, []byte("user edit"), 0o644))

	ensureSampleCopy(docsDir)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "user edit", string(data))
}

func TestRelevantEvent(t *testing.T) {
	assert.True(t, relevantEvent(fsnotify.Event{Name: "a.txt", Op: fsnotify.Write}))
	assert.True(t, relevantEvent(fsnotify.Event{Name: "b.PDF", Op: fsnotify.Create}))
	assert.True(t, relevantEvent(fsnotify.Event{Name: "c.txt", Op: fsnotify.Remove}))
	assert.False(t, relevantEvent(fsnotify.Event{Name: "d.md", Op: fsnotify.Write}))
	assert.False(t, relevantEvent(fsnotify.Event{Name: "e.txt", Op: fsnotify.Chmod}))
}
