package plan

import (
	"testing"

	"github.com/entrhq/surf/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFencedPlan(t *testing.T) {
	text := "Here is the plan:\n```json\n" + `[
  {"step": 1, "action": "search_web", "input": "official youtube site", "description": "Find the official URL"},
  {"step": 2, "action": "open_url", "input": "https://youtube.com", "description": "Navigate to YouTube"},
  {"step": 3, "action": "type_text", "input": {"selector": "input#search", "text": "lofi"}, "description": "Search for videos"}
]` + "\n```"

	p, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, p, 3)

	assert.Equal(t, 1, p[0].Ordinal)
	assert.Equal(t, "search_web", p[0].Action)
	assert.Equal(t, "official youtube site", p[0].Input.Scalar())
	assert.Equal(t, "Find the official URL", p[0].Description)

	assert.Equal(t, tools.InputRecord, p[2].Input.Kind())
	assert.Equal(t, "input#search", p[2].Input.FieldOr("selector", ""))
	assert.Equal(t, "lofi", p[2].Input.FieldOr("text", ""))
}

func TestDecodeAppliesDefaults(t *testing.T) {
	// No ordinals, no descriptions, one missing input.
	text := `[
  {"action": "get_current_url"},
  {"action": "scroll", "input": "down"}
]`

	p, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, p, 2)

	assert.Equal(t, 1, p[0].Ordinal)
	assert.Equal(t, 2, p[1].Ordinal)
	assert.Equal(t, "get_current_url", p[0].Description, "description defaults to the action")
	assert.Equal(t, tools.InputNone, p[0].Input.Kind())
	assert.Equal(t, "down", p[1].Input.Scalar())
}

func TestDecodeWrapsSingleObject(t *testing.T) {
	p, err := Decode(`{"action": "open_url", "input": "https://example.com"}`)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "open_url", p[0].Action)
	assert.Equal(t, 1, p[0].Ordinal)
}

func TestDecodeRejectsEmptyPlan(t *testing.T) {
	_, err := Decode("[]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan is empty")
}

func TestDecodeRejectsProseOnly(t *testing.T) {
	_, err := Decode("I could not come up with a plan, sorry.")
	require.Error(t, err)
}

func TestFallback(t *testing.T) {
	p := Fallback("search_web", "Open YouTube and play a video")
	require.Len(t, p, 1)
	assert.Equal(t, 1, p[0].Ordinal)
	assert.Equal(t, "search_web", p[0].Action)
	assert.Equal(t, "Open YouTube and play a video", p[0].Input.Scalar())
	assert.NotEmpty(t, p[0].Description)
}

func TestTruncate(t *testing.T) {
	p := Plan{{Ordinal: 1}, {Ordinal: 2}, {Ordinal: 3}}

	assert.Len(t, p.Truncate(2), 2)
	assert.Len(t, p.Truncate(3), 3)
	assert.Len(t, p.Truncate(10), 3)
	assert.Len(t, p.Truncate(0), 3, "non-positive max leaves the plan unchanged")
}
