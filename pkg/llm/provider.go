// Package llm provides abstractions for LLM provider integration.
//
// Providers handle API communication with LLM services and return simple
// StreamChunk instances. This keeps providers focused on LLM concerns
// without coupling them to the agent run or its event stream.
//
// The agent layer is responsible for prompt construction, structured-output
// extraction, and fallback behavior when a call fails. From the agent's
// perspective a provider is an opaque function from messages to free text.
package llm

import (
	"context"

	"github.com/entrhq/surf/pkg/types"
)

// Provider defines the interface for LLM integrations.
type Provider interface {
	// StreamCompletion sends messages to the LLM and streams back response
	// chunks. The returned channel emits StreamChunk instances:
	//   - First chunk typically has Role set (e.g., "assistant")
	//   - Subsequent chunks contain Content deltas
	//   - Final chunk has Finished=true
	//   - Error chunks have Error set
	//
	// The channel is closed when streaming completes or an error occurs.
	// Callers should continue reading until the channel is closed.
	//
	// Returns an error only if streaming cannot be initiated (invalid
	// configuration, network unavailable). Stream-time errors are sent as
	// StreamChunk instances with Error set.
	StreamCompletion(ctx context.Context, messages []*types.Message) (<-chan *StreamChunk, error)

	// Complete sends messages to the LLM and returns the full response.
	// This is a convenience wrapper around StreamCompletion that
	// accumulates all chunks into a single message.
	Complete(ctx context.Context, messages []*types.Message) (*types.Message, error)

	// GetModelInfo returns information about the LLM model being used.
	GetModelInfo() *types.ModelInfo

	// GetModel returns the model name being used.
	GetModel() string

	// GetBaseURL returns the base URL being used for API requests.
	GetBaseURL() string
}

// StreamChunk is a single increment of a streamed LLM response.
type StreamChunk struct {
	// Role is the message role, set on the first chunk of a response.
	Role string

	// Content is the text delta carried by this chunk.
	Content string

	// Finished indicates the stream has completed normally.
	Finished bool

	// Error carries a stream-time failure. When set, no further content
	// chunks will follow.
	Error error
}

// IsError returns true if this chunk carries a stream-time error.
func (c *StreamChunk) IsError() bool {
	return c.Error != nil
}
