package types

// MessageRole identifies the author of a message in an LLM conversation.
type MessageRole string

const (
	// RoleSystem is a system instruction message.
	RoleSystem MessageRole = "system"

	// RoleUser is a message authored by the user (or the orchestrator
	// acting on the user's behalf).
	RoleUser MessageRole = "user"

	// RoleAssistant is a message authored by the model.
	RoleAssistant MessageRole = "assistant"
)

// Message is a single conversation message exchanged with an LLM provider.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// NewSystemMessage creates a system message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content}
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates an assistant message.
func NewAssistantMessage(content string) *Message {
	return &Message{Role: RoleAssistant, Content: content}
}

// ModelInfo describes the LLM model behind a provider.
type ModelInfo struct {
	// Name is the model identifier (e.g., "gpt-4o").
	Name string

	// Provider is the provider family (e.g., "openai").
	Provider string

	// MaxTokens is the model's context window size, when known.
	MaxTokens int

	// SupportsStreaming indicates whether the provider can stream responses.
	SupportsStreaming bool

	// Metadata holds provider-specific details (base URL, etc.).
	Metadata map[string]interface{}
}
