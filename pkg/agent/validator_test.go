package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/entrhq/surf/pkg/agent/plan"
	"github.com/entrhq/surf/pkg/llm/tokenizer"
	"github.com/stretchr/testify/assert"
)

func validationSession(lastResult string, cursor, planLen int) *Session {
	sess := NewSession("task")
	sess.LastResult = lastResult
	sess.Cursor = cursor
	sess.Plan = make(plan.Plan, planLen)
	return sess
}

func TestValidateUsesModelVerdict(t *testing.T) {
	provider := &scriptedProvider{responses: []string{
		`{"success": true, "can_continue": false, "notes": "goal already reached", "extracted_info": "https://youtube.com"}`,
	}}
	v := NewValidator(provider, tokenizer.NewApproximate())

	verdict := v.Validate(context.Background(), validationSession("Page loaded", 1, 3))
	assert.True(t, verdict.Success)
	assert.False(t, verdict.CanContinue, "the model may stop a run early")
	assert.Equal(t, "goal already reached", verdict.Notes)
	assert.Equal(t, "https://youtube.com", verdict.ExtractedInfo)
}

func TestValidateFallbackOnProviderError(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("model unavailable")}
	v := NewValidator(provider, tokenizer.NewApproximate())

	verdict := v.Validate(context.Background(), validationSession("Page loaded fine", 1, 3))
	assert.True(t, verdict.Success, "no error keyword in the result")
	assert.True(t, verdict.CanContinue, "steps remain")

	verdict = v.Validate(context.Background(), validationSession("Timeout while loading page", 3, 3))
	assert.False(t, verdict.Success, "timeout is a failure signal")
	assert.False(t, verdict.CanContinue, "plan exhausted")
}

func TestValidateFallbackOnUnparseableAnswer(t *testing.T) {
	provider := &scriptedProvider{responses: []string{"I think it went fine, probably."}}
	v := NewValidator(provider, tokenizer.NewApproximate())

	verdict := v.Validate(context.Background(), validationSession("Element clicked", 1, 2))
	assert.True(t, verdict.Success)
	assert.True(t, verdict.CanContinue)
	assert.Empty(t, verdict.Notes)
}

func TestValidateMissingFieldsDefaultToDeterministic(t *testing.T) {
	provider := &scriptedProvider{responses: []string{`{"notes": "partial answer"}`}}
	v := NewValidator(provider, tokenizer.NewApproximate())

	verdict := v.Validate(context.Background(), validationSession("All good", 1, 2))
	assert.True(t, verdict.Success)
	assert.True(t, verdict.CanContinue)
	assert.Equal(t, "partial answer", verdict.Notes)
}

func TestContainsErrorKeyword(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Page loaded: YouTube", false},
		{"Error executing \"open_url\": boom", true},
		{"unhandled EXCEPTION in tool", true},
		{"Tool \"teleport\" not found.", true},
		{"Timeout after 30s", true},
		{"URL was BLOCKED by policy", true},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsErrorKeyword(tt.text), tt.text)
	}
}
