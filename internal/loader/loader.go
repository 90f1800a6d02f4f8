// Package loader discovers and reads source files for ingestion.
// It handles plain text and PDF files; anything else is ignored during
// scanning. Extraction is best effort: image-only PDFs yield empty text
// and malformed text encodings are decoded with invalid bytes dropped.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/askdocs-cli/internal/core/domain"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads text and PDF files from a directory tree.
type Loader struct{}

// New creates a new document loader.
func New() *Loader {
	return &Loader{}
}

// SupportedExtensions returns the file extensions the loader handles.
func SupportedExtensions() []string {
	return []string{".txt", ".pdf"}
}

// Scan recursively lists matching files under root in walk order.
// A missing root is not an error; it yields no files.
func (l *Loader) Scan(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	return files, nil
}

// Load reads and extracts text from a single file.
func (l *Loader) Load(_ context.Context, path string) (*domain.Document, error) {
	var content string
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		content, err = readPDF(path)
	case ".txt":
		content, err = readText(path)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Document{
		ID:      uuid.New().String(),
		Source:  filepath.Base(path),
		Path:    path,
		Content: content,
	}, nil
}

// supported reports whether the loader handles the file's extension.
func supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedExtensions() {
		if ext == s {
			return true
		}
	}
	return false
}
