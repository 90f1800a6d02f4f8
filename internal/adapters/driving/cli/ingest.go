package cli

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/askdocs-cli/internal/logger"
)

// sampleFAQ ships into the docs directory on first run so a fresh
// install has something to index and query.
//
//go:embed sample_partner_faq.txt
var sampleFAQ []byte

const sampleFAQName = "sample_partner_faq.txt"

// watchDebounce coalesces bursts of filesystem events into one re-index.
const watchDebounce = 500 * time.Millisecond

var (
	ingestDocsDir string
	ingestWatch   bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index documents into the local vector store",
	Long: `Reads .txt and .pdf files from the docs directory (nested folders
included), chunks them, embeds every chunk, and replaces the contents
of the local vector store. Re-run after adding or changing files, or
use --watch to re-index automatically on changes.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestDocsDir, "docs", "", "docs directory (default <data_dir>/docs)")
	ingestCmd.Flags().BoolVarP(&ingestWatch, "watch", "w", false, "keep running and re-index on file changes")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	docsDir := ingestDocsDir
	if docsDir == "" {
		docsDir = cliConfig.DocsDir()
	}

	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}
	ensureSampleCopy(docsDir)

	if err := ingestOnce(cmd, docsDir); err != nil {
		return err
	}

	if ingestWatch {
		return watchAndIngest(cmd, docsDir)
	}
	return nil
}

func ingestOnce(cmd *cobra.Command, docsDir string) error {
	stats, err := ingestService.Ingest(cmd.Context(), docsDir)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if stats.Files == 0 {
		cmd.Printf("No documents found. Drop TXT/PDF files under %s and re-run: askdocs ingest\n", docsDir)
		return nil
	}

	cmd.Printf("Indexed %d chunks from %d files.\n", stats.Chunks, stats.Files)
	return nil
}

// ensureSampleCopy writes the embedded sample FAQ into docsDir unless a
// copy already exists. Failures are non-fatal; the user may simply have
// a read-only docs directory.
func ensureSampleCopy(docsDir string) {
	dst := filepath.Join(docsDir, sampleFAQName)
	if _, err := os.Stat(dst); err == nil {
		return
	}
	if err := os.WriteFile(dst, sampleFAQ, 0o644); err != nil {
		logger.Debug("Could not write sample FAQ: %v", err)
	}
}

// watchAndIngest blocks, re-indexing whenever a document under docsDir
// changes. Events are debounced so editors that write in several steps
// trigger a single re-index.
func watchAndIngest(cmd *cobra.Command, docsDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the root and every existing subdirectory; new directories
	// are added as their create events arrive.
	if err := addWatchTree(watcher, docsDir); err != nil {
		return fmt.Errorf("watching %s: %w", docsDir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", docsDir)

	var timer *time.Timer
	reindex := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-reindex:
			if err := ingestOnce(cmd, docsDir); err != nil {
				// Keep watching; transient failures should not end the session.
				cmd.PrintErrf("re-index failed: %v\n", err)
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			if !relevantEvent(event) {
				continue
			}
			logger.Debug("Change detected: %s (%s)", event.Name, event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case reindex <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevantEvent reports whether the event touches an indexable file.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".txt", ".pdf":
		return true
	}
	return false
}
