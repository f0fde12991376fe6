package parser

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFencedJSONBlock(t *testing.T) {
	text := "Here is the plan:\n```json\n[{\"step\": 1, \"action\": \"search_web\"}]\n```\nLet me know."

	value, err := Extract(text)
	require.NoError(t, err)

	list, ok := value.([]interface{})
	require.True(t, ok, "expected a JSON array")
	require.Len(t, list, 1)

	entry := list[0].(map[string]interface{})
	assert.Equal(t, float64(1), entry["step"])
	assert.Equal(t, "search_web", entry["action"])
}

func TestExtractUntaggedFence(t *testing.T) {
	text := "```\n{\"success\": true}\n```"

	value, err := Extract(text)
	require.NoError(t, err)

	obj := value.(map[string]interface{})
	assert.Equal(t, true, obj["success"])
}

func TestExtractBareArray(t *testing.T) {
	text := `Sure! The steps are: [{"step": 1}, {"step": 2}] — executed in order.`

	value, err := Extract(text)
	require.NoError(t, err)
	assert.Len(t, value.([]interface{}), 2)
}

func TestExtractBareObject(t *testing.T) {
	text := `The verdict is {"success": true, "can_continue": false}.`

	value, err := Extract(text)
	require.NoError(t, err)

	obj := value.(map[string]interface{})
	assert.Equal(t, true, obj["success"])
	assert.Equal(t, false, obj["can_continue"])
}

func TestMalformedFenceFallsThroughToObject(t *testing.T) {
	// The fence contains broken JSON; the bare object after it is valid.
	text := "```json\nbroken!\n```\n{\"ok\": true}"

	value, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, true, value.(map[string]interface{})["ok"])
}

func TestNoStructuredOutput(t *testing.T) {
	text := "I could not complete the task, sorry."

	_, err := Extract(text)
	require.Error(t, err)

	var noOutput *NoStructuredOutputError
	require.ErrorAs(t, err, &noOutput)
	assert.Equal(t, text, noOutput.Prefix)
}

func TestErrorPrefixIsBounded(t *testing.T) {
	text := strings.Repeat("x", 1000)

	_, err := Extract(text)
	require.Error(t, err)

	var noOutput *NoStructuredOutputError
	require.ErrorAs(t, err, &noOutput)
	assert.Len(t, noOutput.Prefix, 300)
}

func TestExtractIsTotalOverArbitraryInput(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"]}{[",
		"```json",
		"``````",
		"[1, 2,",
		"{\"a\": }",
		"\x00\xff binary garbage [",
	}

	for _, input := range inputs {
		_, err := Extract(input)
		var noOutput *NoStructuredOutputError
		assert.ErrorAs(t, err, &noOutput, "input %q", input)
	}
}

func TestExtractIdempotent(t *testing.T) {
	text := `{"intent_summary": "open youtube", "needs_search": true, "semantic_constraints": ["youtube.com only"]}`

	first, err := Extract(text)
	require.NoError(t, err)

	serialized, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := Extract(string(serialized))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractInto(t *testing.T) {
	text := "```json\n{\"success\": false, \"notes\": \"timeout\"}\n```"

	var verdict struct {
		Success *bool  `json:"success"`
		Notes   string `json:"notes"`
	}
	require.NoError(t, ExtractInto(text, &verdict))
	require.NotNil(t, verdict.Success)
	assert.False(t, *verdict.Success)
	assert.Equal(t, "timeout", verdict.Notes)
}

func TestExtractIntoSkipsCandidatesThatDoNotFit(t *testing.T) {
	// Un-fenced object with an array-valued field: the greedy array
	// slice is valid JSON but does not fit the target, so the decode
	// must fall through to the object candidate.
	text := `{"intent_summary": "open youtube and play a video", "target_domain": "youtube", "semantic_constraints": ["use only youtube.com"], "needs_search": true}`

	var intent struct {
		IntentSummary       string   `json:"intent_summary"`
		TargetDomain        string   `json:"target_domain"`
		SemanticConstraints []string `json:"semantic_constraints"`
		NeedsSearch         bool     `json:"needs_search"`
	}
	require.NoError(t, ExtractInto(text, &intent))
	assert.Equal(t, "open youtube and play a video", intent.IntentSummary)
	assert.Equal(t, "youtube", intent.TargetDomain)
	assert.Equal(t, []string{"use only youtube.com"}, intent.SemanticConstraints)
	assert.True(t, intent.NeedsSearch)
}

func TestExtractIntoPicksFittingCandidatePerTarget(t *testing.T) {
	// The same text yields the array for a list target and the object
	// for a struct target.
	text := `notes first: {"notes": "partial"} then the list: ["a", "b"]`

	var target []string
	require.NoError(t, ExtractInto(text, &target))
	assert.Equal(t, []string{"a", "b"}, target)

	var verdict struct {
		Notes string `json:"notes"`
	}
	require.NoError(t, ExtractInto(text, &verdict))
	assert.Equal(t, "partial", verdict.Notes)
}

func TestExtractIntoShapeMismatch(t *testing.T) {
	var target []string
	err := ExtractInto(`{"a": 1}`, &target)

	var noOutput *NoStructuredOutputError
	assert.ErrorAs(t, err, &noOutput)
}

func TestGreedyArrayPreferredOverObject(t *testing.T) {
	// Both an array and an object are present; the array wins per the
	// candidate ordering.
	text := `plan: [{"step": 1}] meta: {"count": 1}`

	value, err := Extract(text)
	require.NoError(t, err)

	_, isList := value.([]interface{})
	assert.True(t, isList)
}
