package browser

import (
	"context"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// TypeTextTool types text into an input field.
type TypeTextTool struct {
	session *Session
}

// NewTypeTextTool creates a new typing tool bound to session.
func NewTypeTextTool(session *Session) *TypeTextTool {
	return &TypeTextTool{session: session}
}

// Name returns the tool name.
func (t *TypeTextTool) Name() string {
	return "type_text"
}

// Description returns the tool description.
func (t *TypeTextTool) Description() string {
	return "Type text into an input field identified by a CSS selector. Clears the field first, then types with a short delay to simulate human typing."
}

// Params returns the declared parameter shape.
func (t *TypeTextTool) Params() tools.ParamSpec {
	return tools.RecordParams(
		tools.Param{Name: "selector", Description: "CSS selector of the input field", Required: true},
		tools.Param{Name: "text", Description: "text to type into the field", Required: true},
	)
}

// Execute types the text into the field.
func (t *TypeTextTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	selector, ok := input.Field("selector")
	if !ok || selector == "" {
		return "", fmt.Errorf("selector is required")
	}
	text, ok := input.Field("text")
	if !ok {
		return "", fmt.Errorf("text is required")
	}

	if err := t.session.Type(selector, text); err != nil {
		return "", fmt.Errorf("error typing into %q: %w", selector, err)
	}

	return fmt.Sprintf("Text %q typed into field %q.", text, selector), nil
}
