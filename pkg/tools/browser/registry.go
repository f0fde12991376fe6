package browser

import (
	"github.com/entrhq/surf/pkg/tools"
)

// Tools returns the full browser tool set bound to session, in the order
// they are surfaced to the planning prompt.
func Tools(session *Session) []tools.Tool {
	return []tools.Tool{
		NewOpenURLTool(session),
		NewClickTool(session),
		NewTypeTextTool(session),
		NewExtractElementsTool(session),
		NewCurrentURLTool(session),
		NewScrollTool(session),
	}
}
