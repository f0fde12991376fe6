package browser

import (
	"context"
	"fmt"
	"strconv"

	"github.com/entrhq/surf/pkg/tools"
)

// Scroll defaults when the plan omits them.
const (
	defaultScrollDirection = "down"
	defaultScrollAmount    = 500
)

// ScrollTool scrolls the current page up or down.
type ScrollTool struct {
	session *Session
}

// NewScrollTool creates a new scroll tool bound to session.
func NewScrollTool(session *Session) *ScrollTool {
	return &ScrollTool{session: session}
}

// Name returns the tool name.
func (t *ScrollTool) Name() string {
	return "scroll_page"
}

// Description returns the tool description.
func (t *ScrollTool) Description() string {
	return "Scroll the current page up or down to reveal more content. Useful when elements are below the fold or content is lazy-loaded."
}

// Params returns the declared parameter shape.
func (t *ScrollTool) Params() tools.ParamSpec {
	return tools.RecordParams(
		tools.Param{Name: "direction", Description: "'down' or 'up' (default down)"},
		tools.Param{Name: "amount", Description: "pixel amount to scroll (default 500)"},
	)
}

// Execute scrolls the page. A scalar input is treated as the direction so
// plans that pass just "down" or "up" still work.
func (t *ScrollTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	direction := defaultScrollDirection
	amount := defaultScrollAmount

	switch input.Kind() {
	case tools.InputScalar:
		if input.Scalar() != "" {
			direction = input.Scalar()
		}
	case tools.InputRecord:
		direction = input.FieldOr("direction", defaultScrollDirection)
		if raw := input.FieldOr("amount", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				return "", fmt.Errorf("invalid scroll amount %q", raw)
			}
			amount = parsed
		}
	}

	if direction != "down" && direction != "up" {
		return "", fmt.Errorf("invalid scroll direction %q (must be 'down' or 'up')", direction)
	}

	delta := amount
	if direction == "up" {
		delta = -amount
	}
	if err := t.session.Scroll(delta); err != nil {
		return "", fmt.Errorf("error scrolling page: %w", err)
	}

	return fmt.Sprintf("Page scrolled %s by %dpx.", direction, amount), nil
}
