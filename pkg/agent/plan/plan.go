// Package plan defines the execution plan produced by plan generation
// and the tolerant decoding that turns loosely-shaped model JSON into
// typed steps. Model output is untrusted: every field may be missing or
// mistyped, and decoding substitutes defaults instead of failing on
// partial steps.
package plan

import (
	"encoding/json"
	"fmt"

	"github.com/entrhq/surf/pkg/llm/parser"
	"github.com/entrhq/surf/pkg/tools"
)

// Step is one planned tool invocation. Steps are produced once by plan
// generation and never mutated afterwards.
type Step struct {
	// Ordinal is the 1-based position shown to the user. It defaults to
	// the step's position in the list when the model omits it.
	Ordinal int

	// Action names a tool in the registry. It may name a tool that does
	// not exist; resolution failures are handled at execution time.
	Action string

	// Input is the tool payload, either a scalar or a named-field record.
	Input tools.Input

	// Description is the human-readable summary, defaulting to the
	// action name.
	Description string
}

// Plan is the ordered list of steps for one run. A plan is replaced
// wholesale if regenerated; individual steps are never edited.
type Plan []Step

// stepJSON is the loose wire shape the model produces.
type stepJSON struct {
	Step        *int        `json:"step"`
	Action      string      `json:"action"`
	Input       tools.Input `json:"input"`
	Description string      `json:"description"`
}

// Decode extracts a plan from raw model text. The text may wrap the
// JSON in prose or a fenced code block; a single step object (rather
// than a list) is accepted and wrapped. Missing ordinals and
// descriptions receive defaults. An empty decoded list is an error so
// callers fall back rather than running a zero-step plan.
func Decode(text string) (Plan, error) {
	raw, err := parser.ExtractRaw(text)
	if err != nil {
		return nil, err
	}

	var entries []stepJSON
	if err := json.Unmarshal(raw, &entries); err != nil {
		var single stepJSON
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("plan JSON has unexpected shape: %w", err)
		}
		entries = []stepJSON{single}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("plan is empty")
	}

	steps := make(Plan, 0, len(entries))
	for i, e := range entries {
		s := Step{
			Ordinal:     i + 1,
			Action:      e.Action,
			Input:       e.Input,
			Description: e.Description,
		}
		if e.Step != nil && *e.Step > 0 {
			s.Ordinal = *e.Step
		}
		if s.Description == "" {
			s.Description = s.Action
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Fallback returns the single-step plan used when plan generation
// fails: one invocation of the given search action with the user's raw
// request as the query.
func Fallback(searchAction, userInput string) Plan {
	return Plan{{
		Ordinal:     1,
		Action:      searchAction,
		Input:       tools.ScalarInput(userInput),
		Description: "Initial web search for the request",
	}}
}

// Truncate caps the plan at max steps. Non-positive max leaves the plan
// unchanged.
func (p Plan) Truncate(max int) Plan {
	if max <= 0 || len(p) <= max {
		return p
	}
	return p[:max]
}
