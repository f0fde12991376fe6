package agent

import (
	"context"
	"strings"

	"github.com/entrhq/surf/pkg/llm"
	"github.com/entrhq/surf/pkg/llm/parser"
	"github.com/entrhq/surf/pkg/llm/tokenizer"
	"github.com/entrhq/surf/pkg/types"
)

// errorKeywords are the deterministic failure signals checked before
// asking the model. The list includes the markers the executor itself
// produces ("not found", "BLOCKED") so the pre-check catches synthetic
// failures without a model round-trip.
var errorKeywords = []string{"error", "exception", "not found", "timeout", "blocked"}

// Validator inspects the last execution outcome and decides whether the
// plan may proceed. A deterministic keyword check establishes a
// fallback verdict; the model may refine it, and any model failure
// degrades gracefully to the fallback.
type Validator struct {
	provider llm.Provider
	tok      *tokenizer.Tokenizer
}

// NewValidator creates a validator backed by provider.
func NewValidator(provider llm.Provider, tok *tokenizer.Tokenizer) *Validator {
	if tok == nil {
		tok = tokenizer.New()
	}
	return &Validator{provider: provider, tok: tok}
}

// verdictJSON is the loose wire shape of the model's validation answer.
// Boolean fields are pointers so a missing field is distinguishable
// from an explicit false and can default to the deterministic verdict.
type verdictJSON struct {
	Success       *bool  `json:"success"`
	CanContinue   *bool  `json:"can_continue"`
	Notes         string `json:"notes"`
	ExtractedInfo string `json:"extracted_info"`
}

// Validate produces the verdict for the session's last result. It never
// fails: a model error or unparseable answer yields the deterministic
// fallback {success: no error keyword, can_continue: steps remain}.
func (v *Validator) Validate(ctx context.Context, sess *Session) Verdict {
	hasError := containsErrorKeyword(sess.LastResult)
	hasMore := sess.Cursor < len(sess.Plan)
	fallback := Verdict{Success: !hasError, CanContinue: hasMore}

	prompt := validationPrompt(
		v.tok.Truncate(sess.LastResult, validationResultBudget),
		sess.Cursor, len(sess.Plan), hasMore, hasError,
	)

	resp, err := v.provider.Complete(ctx, []*types.Message{types.NewUserMessage(prompt)})
	if err != nil {
		agentLog.Warnf("validation call failed, using deterministic verdict: %v", err)
		return fallback
	}

	var wire verdictJSON
	if err := parser.ExtractInto(resp.Content, &wire); err != nil {
		agentLog.Warnf("validation response had no usable JSON, using deterministic verdict: %v", err)
		return fallback
	}

	verdict := fallback
	if wire.Success != nil {
		verdict.Success = *wire.Success
	}
	if wire.CanContinue != nil {
		verdict.CanContinue = *wire.CanContinue
	}
	verdict.Notes = wire.Notes
	verdict.ExtractedInfo = wire.ExtractedInfo
	return verdict
}

// containsErrorKeyword reports whether text carries a known failure
// signal. Matching is case-insensitive.
func containsErrorKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range errorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
