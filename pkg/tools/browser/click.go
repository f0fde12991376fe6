package browser

import (
	"context"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// ClickTool clicks an element in the current page.
type ClickTool struct {
	session *Session
}

// NewClickTool creates a new click tool bound to session.
func NewClickTool(session *Session) *ClickTool {
	return &ClickTool{session: session}
}

// Name returns the tool name.
func (t *ClickTool) Name() string {
	return "click_element"
}

// Description returns the tool description.
func (t *ClickTool) Description() string {
	return "Click an element identified by a CSS selector. If the selector does not resolve, falls back to matching visible text (prefix with 'text=' to force text matching, e.g. 'text=Learn More')."
}

// Params returns the declared parameter shape.
func (t *ClickTool) Params() tools.ParamSpec {
	return tools.ScalarParam("selector", "CSS selector (e.g. 'button.cta') or text to match")
}

// Execute clicks the element.
func (t *ClickTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	selector := input.Scalar()
	if selector == "" {
		selector = input.FieldOr("selector", "")
	}
	if selector == "" {
		return "", fmt.Errorf("selector is required")
	}

	currentURL, err := t.session.Click(selector)
	if err != nil {
		return "", fmt.Errorf("error clicking %q: %w", selector, err)
	}

	return fmt.Sprintf("Element %q clicked successfully. Current URL: %s", selector, currentURL), nil
}
