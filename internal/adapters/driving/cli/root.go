// Package cli wires the cobra command tree. Commands reach the core
// through driving ports that main injects via the Set* functions.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/askdocs-cli/internal/config"
	"github.com/custodia-labs/askdocs-cli/internal/core/ports/driving"
	"github.com/custodia-labs/askdocs-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	ingestService driving.IngestService
	askService    driving.AskService
	cliConfig     = config.Default()
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "askdocs",
	Short: "Ask questions about your local documents",
	Long: `askdocs is a local retrieval-augmented question answering tool.

Place .txt and .pdf files under the docs directory, run 'askdocs ingest'
to build the local index, then ask questions with 'askdocs ask' or the
interactive 'askdocs chat'. Everything runs locally against Ollama.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetIngestService injects the ingest service used by commands.
func SetIngestService(svc driving.IngestService) {
	ingestService = svc
}

// SetAskService injects the ask service used by commands.
func SetAskService(svc driving.AskService) {
	askService = svc
}

// SetConfig injects the effective configuration.
func SetConfig(cfg *config.Config) {
	if cfg != nil {
		cliConfig = cfg
	}
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
