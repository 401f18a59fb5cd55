package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/panseek/panseek/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Keyword string `json:"keyword" jsonschema:"the keyword to search netdisk shares for"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	Title      string `json:"title"`
	Link       string `json:"link"`
	Backend    string `json:"backend"`
	AccessCode string `json:"access_code,omitempty"`
}

// ResolveInput is the input schema for the resolve tool.
type ResolveInput struct {
	Title   string `json:"title" jsonschema:"the result title, used to derive the destination path"`
	Link    string `json:"link" jsonschema:"the raw share link from a search result"`
	Backend string `json:"backend" jsonschema:"the backend kind: quark or baidu"`
}

// ResolveOutput is the output schema for the resolve tool.
type ResolveOutput struct {
	Link        string `json:"link"`
	AccessCode  string `json:"access_code,omitempty"`
	Provisional bool   `json:"provisional"`
	TaskID      string `json:"task_id,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search netdisk shares across all aggregated sources",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a search result into a usable share link",
	}, s.handleResolve)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	results, err := s.ports.Search.Search(ctx, input.Keyword)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	if len(results) > limit {
		results = results[:limit]
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Title:      results[i].Title,
			Link:       results[i].RawLink,
			Backend:    string(results[i].Backend),
			AccessCode: results[i].AccessCode,
		}
	}

	return nil, output, nil
}

// handleResolve handles the resolve tool invocation. Provisional
// resolutions start their detached transfer immediately: the tool
// result is the reply, so there is nothing to sequence after it.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	kind := domain.BackendKind(input.Backend)
	if !kind.Valid() {
		return nil, ResolveOutput{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, input.Backend)
	}

	item := domain.ResultItem{
		Title:   input.Title,
		RawLink: input.Link,
		Backend: kind,
	}
	resolution, err := s.ports.Resolve.Resolve(ctx, item)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	if resolution.Start != nil {
		resolution.Start()
	}

	return nil, ResolveOutput{
		Link:        resolution.Link,
		AccessCode:  resolution.AccessCode,
		Provisional: resolution.Provisional,
		TaskID:      resolution.TaskID,
	}, nil
}
