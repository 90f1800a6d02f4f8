package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var (
	askTopK        int
	askShowContext bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your indexed documents",
	Long: `Retrieves the most relevant chunks for the question and asks the
local model for a grounded answer. Run 'askdocs ingest' first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of chunks to retrieve (default from config)")
	askCmd.Flags().BoolVar(&askShowContext, "show-context", false, "print the retrieved chunks before the answer")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	question := strings.Join(args, " ")
	topK := askTopK
	if topK <= 0 {
		topK = cliConfig.TopK
	}

	if askShowContext {
		hits, err := askService.Retrieve(cmd.Context(), question, topK)
		if err == nil {
			for i, hit := range hits {
				cmd.Printf("[%d] %s (chunk %d, %.3f)\n%s\n\n",
					i+1, hit.Chunk.Source, hit.Chunk.Index, hit.Similarity, hit.Chunk.Content)
			}
		}
	}

	cmd.Println(askService.Answer(cmd.Context(), question, topK))
	return nil
}
