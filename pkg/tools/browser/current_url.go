package browser

import (
	"context"

	"github.com/entrhq/surf/pkg/tools"
)

// CurrentURLTool reports the URL of the current page.
type CurrentURLTool struct {
	session *Session
}

// NewCurrentURLTool creates a new current-URL tool bound to session.
func NewCurrentURLTool(session *Session) *CurrentURLTool {
	return &CurrentURLTool{session: session}
}

// Name returns the tool name.
func (t *CurrentURLTool) Name() string {
	return "get_current_url"
}

// Description returns the tool description.
func (t *CurrentURLTool) Description() string {
	return "Return the current URL of the browser session. Use to verify which page is open before or after other actions."
}

// Params returns the declared parameter shape.
func (t *CurrentURLTool) Params() tools.ParamSpec {
	return tools.NoParams()
}

// Execute returns the current URL.
func (t *CurrentURLTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	return t.session.URL(), nil
}
