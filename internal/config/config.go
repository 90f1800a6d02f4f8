// Package config loads askdocs configuration from an optional TOML file
// and environment variables. Precedence, lowest to highest: built-in
// defaults, askdocs.toml, environment. A .env file in the working
// directory is loaded into the environment first, if present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "askdocs.toml"

// Config holds all configuration for the pipeline.
type Config struct {
	// DataDir is the root for local state. Documents are read from
	// <DataDir>/docs and the vector store lives under <DataDir>/db.
	DataDir string `toml:"data_dir"`

	// TopK is the default number of chunks retrieved per question.
	TopK int `toml:"top_k"`

	// OllamaHost is the base URL of the local Ollama server.
	OllamaHost string `toml:"ollama_host"`

	// Model is the completion model used to generate answers.
	Model string `toml:"model"`

	// EmbedModel is the embedding model used for chunks and questions.
	EmbedModel string `toml:"embed_model"`

	// ChunkSize is the chunk size in characters.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the overlap between consecutive chunks.
	ChunkOverlap int `toml:"chunk_overlap"`

	// GenerateTimeout bounds the blocking generation call.
	GenerateTimeout time.Duration `toml:"-"`

	// GenerateTimeoutSeconds is the TOML-facing form of GenerateTimeout.
	GenerateTimeoutSeconds int `toml:"generate_timeout_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:         "data",
		TopK:            4,
		OllamaHost:      "http://localhost:11434",
		Model:           "granite3.3:8b",
		EmbedModel:      "nomic-embed-text",
		ChunkSize:       800,
		ChunkOverlap:    120,
		GenerateTimeout: 120 * time.Second,
	}
}

// Load builds the effective configuration. path may name a TOML file;
// when empty, askdocs.toml in the working directory is used if present.
func Load(path string) (*Config, error) {
	// Environment is optional, but load it for parity with .env users.
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if cfg.GenerateTimeoutSeconds > 0 {
			cfg.GenerateTimeout = time.Duration(cfg.GenerateTimeoutSeconds) * time.Second
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	c.DataDir = getEnv("ASKDOCS_DATA_DIR", c.DataDir)
	c.TopK = getEnvInt("TOP_K", c.TopK)
	c.OllamaHost = getEnv("OLLAMA_HOST", c.OllamaHost)
	c.Model = getEnv("OLLAMA_MODEL", c.Model)
	c.EmbedModel = getEnv("OLLAMA_EMBED_MODEL", c.EmbedModel)
	c.ChunkSize = getEnvInt("ASKDOCS_CHUNK_SIZE", c.ChunkSize)
	c.ChunkOverlap = getEnvInt("ASKDOCS_CHUNK_OVERLAP", c.ChunkOverlap)
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d", c.TopK)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("chunk_overlap must not be negative, got %d", c.ChunkOverlap)
	}
	return nil
}

// DocsDir returns the directory scanned for documents.
func (c *Config) DocsDir() string {
	return filepath.Join(c.DataDir, "docs")
}

// DBDir returns the directory holding the persistent vector store.
func (c *Config) DBDir() string {
	return filepath.Join(c.DataDir, "db")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
