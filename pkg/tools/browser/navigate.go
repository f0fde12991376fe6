package browser

import (
	"context"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// ActionOpenURL is the plan action name for navigation. The semantic guard
// in the agent loop is scoped to this action.
const ActionOpenURL = "open_url"

// OpenURLTool navigates the shared browser session to a URL.
type OpenURLTool struct {
	session *Session
}

// NewOpenURLTool creates a new navigation tool bound to session.
func NewOpenURLTool(session *Session) *OpenURLTool {
	return &OpenURLTool{session: session}
}

// Name returns the tool name.
func (t *OpenURLTool) Name() string {
	return ActionOpenURL
}

// Description returns the tool description.
func (t *OpenURLTool) Description() string {
	return "Open a URL in the controlled browser session. Waits for the page to load and returns the page title and final URL to confirm navigation."
}

// Params returns the declared parameter shape.
func (t *OpenURLTool) Params() tools.ParamSpec {
	return tools.ScalarParam("url", "full URL to open, including https:// or http://")
}

// Execute navigates to the given URL.
func (t *OpenURLTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	url := input.Scalar()
	if url == "" {
		url = input.FieldOr("url", "")
	}
	if url == "" {
		return "", fmt.Errorf("url is required")
	}

	title, finalURL, err := t.session.Navigate(url)
	if err != nil {
		return "", fmt.Errorf("error opening URL %q: %w", url, err)
	}

	return fmt.Sprintf("Page loaded successfully.\nTitle: %s\nCurrent URL: %s", title, finalURL), nil
}
