// Command askdocs is a local retrieval-augmented question answering
// tool. It indexes .txt and .pdf files into a SQLite vector store and
// answers questions about them via a local Ollama server.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/askdocs-cli/internal/adapters/driven/ollama"
	"github.com/custodia-labs/askdocs-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/askdocs-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/askdocs-cli/internal/chunker"
	"github.com/custodia-labs/askdocs-cli/internal/config"
	"github.com/custodia-labs/askdocs-cli/internal/core/services"
	"github.com/custodia-labs/askdocs-cli/internal/loader"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "askdocs: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// One store handle for the whole process.
	store, err := sqlite.NewStore(cfg.DBDir())
	if err != nil {
		return fmt.Errorf("opening vector store: %w", err)
	}
	defer store.Close()

	embedder := ollama.NewEmbeddingService(ollama.EmbedConfig{
		BaseURL: cfg.OllamaHost,
		Model:   cfg.EmbedModel,
	})
	defer embedder.Close()

	llm := ollama.NewLLMService(ollama.LLMConfig{
		BaseURL: cfg.OllamaHost,
		Model:   cfg.Model,
		Timeout: cfg.GenerateTimeout,
	})
	defer llm.Close()

	chk := chunker.New(
		chunker.WithChunkSize(cfg.ChunkSize),
		chunker.WithOverlap(cfg.ChunkOverlap),
	)

	cli.SetConfig(cfg)
	cli.SetVersion(version)
	cli.SetIngestService(services.NewIngestService(loader.New(), chk, embedder, store))
	cli.SetAskService(services.NewAskService(store, embedder, llm))

	return cli.Execute()
}
