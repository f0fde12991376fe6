package browser

import (
	"context"
	"testing"

	"github.com/entrhq/surf/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolMetadata(t *testing.T) {
	for _, tool := range Tools(nil) {
		assert.NotEmpty(t, tool.Name())
		assert.NotEmpty(t, tool.Description())
	}
}

func TestToolNames(t *testing.T) {
	names := make([]string, 0)
	for _, tool := range Tools(nil) {
		names = append(names, tool.Name())
	}
	assert.Equal(t, []string{
		"open_url",
		"click_element",
		"type_text",
		"extract_page_elements",
		"get_current_url",
		"scroll_page",
	}, names)
}

func TestOpenURLRequiresURL(t *testing.T) {
	tool := NewOpenURLTool(nil)

	_, err := tool.Execute(context.Background(), tools.NoInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")
}

func TestClickRequiresSelector(t *testing.T) {
	tool := NewClickTool(nil)

	_, err := tool.Execute(context.Background(), tools.ScalarInput(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector is required")
}

func TestTypeTextRequiresFields(t *testing.T) {
	tool := NewTypeTextTool(nil)

	_, err := tool.Execute(context.Background(), tools.RecordInput(map[string]string{"text": "hello"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector is required")

	_, err = tool.Execute(context.Background(), tools.RecordInput(map[string]string{"selector": "#q"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text is required")
}

func TestTypeTextParamShape(t *testing.T) {
	tool := NewTypeTextTool(nil)
	spec := tool.Params()

	require.Equal(t, tools.ParamsRecord, spec.Kind)
	assert.Equal(t, "{selector, text}", spec.Describe())
}

func TestScrollRejectsInvalidDirection(t *testing.T) {
	tool := NewScrollTool(nil)

	_, err := tool.Execute(context.Background(), tools.ScalarInput("sideways"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scroll direction")
}

func TestScrollRejectsInvalidAmount(t *testing.T) {
	tool := NewScrollTool(nil)

	_, err := tool.Execute(context.Background(), tools.RecordInput(map[string]string{
		"direction": "down",
		"amount":    "lots",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scroll amount")
}
