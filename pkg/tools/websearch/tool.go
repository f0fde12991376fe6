package websearch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// ActionSearchWeb is the plan action name for web search. It is also the
// action used by the fallback plan when plan generation fails.
const ActionSearchWeb = "search_web"

// SearchTool exposes web search as an agent capability.
type SearchTool struct {
	client *Client
}

// NewSearchTool creates a search tool backed by client.
func NewSearchTool(client *Client) *SearchTool {
	return &SearchTool{client: client}
}

// Name returns the tool name.
func (t *SearchTool) Name() string {
	return ActionSearchWeb
}

// Description returns the tool description.
func (t *SearchTool) Description() string {
	return "Search the web and return the top results as JSON: [{title, url, snippet}]. Use this to discover official URLs or information before navigating to a website."
}

// Params returns the declared parameter shape.
func (t *SearchTool) Params() tools.ParamSpec {
	return tools.ScalarParam("query", "the search query (e.g. 'official company website')")
}

// Execute runs the search and returns the results as JSON text.
func (t *SearchTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	query := input.Scalar()
	if query == "" {
		query = input.FieldOr("query", "")
	}
	if query == "" {
		return "", fmt.Errorf("query is required")
	}

	results, err := t.client.Search(ctx, query)
	if err != nil {
		return "", fmt.Errorf("error searching for %q: %w", query, err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding search results: %w", err)
	}
	return string(data), nil
}
