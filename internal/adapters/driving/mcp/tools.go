package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the indexed documents"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"number of context chunks to retrieve (default from config)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// RetrieveInput is the input schema for the retrieve tool.
type RetrieveInput struct {
	Question string `json:"question" jsonschema:"the question to find relevant chunks for"`
	TopK     int    `json:"top_k,omitempty" jsonschema:"maximum number of chunks to return (default from config)"`
}

// RetrieveOutput is the output schema for the retrieve tool.
type RetrieveOutput struct {
	Chunks []RetrievedChunkOutput `json:"chunks"`
	Count  int                    `json:"count"`
}

// RetrievedChunkOutput represents a single retrieved chunk.
type RetrievedChunkOutput struct {
	Source     string  `json:"source"`
	Index      int     `json:"index"`
	Similarity float64 `json:"similarity"`
	Content    string  `json:"content"`
}

// IngestInput is the input schema for the ingest tool.
type IngestInput struct {
	DocsDir string `json:"docs_dir" jsonschema:"directory containing .txt and .pdf documents to index"`
}

// IngestOutput is the output schema for the ingest tool.
type IngestOutput struct {
	Files  int `json:"files"`
	Chunks int `json:"chunks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question using the indexed documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "retrieve",
		Description: "Retrieve the most relevant document chunks for a question",
	}, s.handleRetrieve)

	if s.ports.Ingest != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "ingest",
			Description: "Re-index the documents in a directory",
		}, s.handleIngest)
	}
}

func (s *Server) topK(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.ports.TopK > 0 {
		return s.ports.TopK
	}
	return 4
}

// handleAsk handles the ask tool invocation. The answer is always
// displayable text; service failures are rendered into it rather than
// returned as tool errors.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer := s.ports.Ask.Answer(ctx, input.Question, s.topK(input.TopK))
	return nil, AskOutput{Answer: answer}, nil
}

// handleRetrieve handles the retrieve tool invocation.
func (s *Server) handleRetrieve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RetrieveInput,
) (*mcp.CallToolResult, RetrieveOutput, error) {
	hits, err := s.ports.Ask.Retrieve(ctx, input.Question, s.topK(input.TopK))
	if err != nil {
		return nil, RetrieveOutput{}, err
	}

	output := RetrieveOutput{
		Chunks: make([]RetrievedChunkOutput, len(hits)),
		Count:  len(hits),
	}
	for i := range hits {
		output.Chunks[i] = RetrievedChunkOutput{
			Source:     hits[i].Chunk.Source,
			Index:      hits[i].Chunk.Index,
			Similarity: hits[i].Similarity,
			Content:    hits[i].Chunk.Content,
		}
	}

	return nil, output, nil
}

// handleIngest handles the ingest tool invocation.
func (s *Server) handleIngest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IngestInput,
) (*mcp.CallToolResult, IngestOutput, error) {
	stats, err := s.ports.Ingest.Ingest(ctx, input.DocsDir)
	if err != nil {
		return nil, IngestOutput{}, err
	}
	return nil, IngestOutput{Files: stats.Files, Chunks: stats.Chunks}, nil
}
