package browser

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/tools"
)

// elementsScript collects the visible interactive elements of the page:
// links, buttons, inputs, and anything clickable, each with a selector
// hint the agent can feed back into click_element or type_text. Capped at
// 40 entries to keep results within prompt budgets.
const elementsScript = `
() => {
	const selectors = ['a', 'button', 'input', 'select', 'textarea', '[role="button"]', '[onclick]'];
	const results = [];
	const seen = new Set();

	selectors.forEach(sel => {
		document.querySelectorAll(sel).forEach(el => {
			if (seen.has(el)) return;
			seen.add(el);

			const rect = el.getBoundingClientRect();
			if (rect.width === 0 || rect.height === 0) return;

			const text = (el.innerText || el.value || el.placeholder || el.getAttribute('aria-label') || '').trim().slice(0, 80);
			const tag = el.tagName.toLowerCase();
			const type = el.type || '';
			const href = el.href || '';
			const cls = el.className || '';
			const id = el.id || '';

			let hint = tag;
			if (id) hint = '#' + id;
			else if (cls) hint = tag + '.' + cls.split(' ')[0];

			results.push({ tag, type, text, href, hint, id, cls: cls.slice(0, 60) });
		});
	});
	return results.slice(0, 40);
}
`

// ExtractElementsTool lists the visible interactive elements of the page.
type ExtractElementsTool struct {
	session *Session
}

// NewExtractElementsTool creates a new extraction tool bound to session.
func NewExtractElementsTool(session *Session) *ExtractElementsTool {
	return &ExtractElementsTool{session: session}
}

// Name returns the tool name.
func (t *ExtractElementsTool) Name() string {
	return "extract_page_elements"
}

// Description returns the tool description.
func (t *ExtractElementsTool) Description() string {
	return "Extract the visible interactive elements of the current page (links, buttons, inputs) as JSON, each with text, type, href, and a CSS selector hint. Use before clicking to verify what is on the page."
}

// Params returns the declared parameter shape.
func (t *ExtractElementsTool) Params() tools.ParamSpec {
	return tools.NoParams()
}

// Execute scans the page and returns the elements as JSON text.
func (t *ExtractElementsTool) Execute(ctx context.Context, input tools.Input) (string, error) {
	elements, err := t.session.Evaluate(elementsScript)
	if err != nil {
		return "", fmt.Errorf("error extracting page elements: %w", err)
	}

	data, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding page elements: %w", err)
	}
	return string(data), nil
}
