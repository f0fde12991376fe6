package agent

import (
	"context"
	"fmt"

	"github.com/entrhq/surf/pkg/agent/guard"
	"github.com/entrhq/surf/pkg/agent/plan"
	"github.com/entrhq/surf/pkg/tools"
)

// StepExecutor runs exactly one plan step per invocation against the
// tool registry, applying the semantic guard to scalar navigation
// inputs.
//
// Failures are data, not control flow: an unknown action, a blocked
// URL, or a tool error all become descriptive result strings bound into
// the outcome, and the cursor advances regardless. The executor never
// retries a step.
type StepExecutor struct {
	registry         *tools.Registry
	guard            *guard.Guard
	navigationAction string
}

// NewStepExecutor creates an executor over the given registry.
// navigationAction names the action subject to the semantic guard.
func NewStepExecutor(registry *tools.Registry, g *guard.Guard, navigationAction string) *StepExecutor {
	if g == nil {
		g = &guard.Guard{}
	}
	return &StepExecutor{
		registry:         registry,
		guard:            g,
		navigationAction: navigationAction,
	}
}

// Execute runs the step at the session cursor and records its outcome.
//
// When the cursor is already past the end of the plan it sets a
// terminal "plan completed" result and reports executed=false without
// touching the cursor or history. Otherwise it mutates the session
// exactly once: appends the outcome, sets LastResult, and advances the
// cursor by one.
func (e *StepExecutor) Execute(ctx context.Context, sess *Session) (outcome ExecutionOutcome, executed bool) {
	if sess.Cursor >= len(sess.Plan) {
		sess.LastResult = "Plan completed."
		return ExecutionOutcome{}, false
	}

	step := sess.Plan[sess.Cursor]
	result := e.run(ctx, sess.Intent, step)

	outcome = ExecutionOutcome{
		Step:        sess.Cursor + 1,
		Action:      step.Action,
		Input:       step.Input,
		Result:      result,
		Description: step.Description,
	}
	sess.History = append(sess.History, outcome)
	sess.LastResult = result
	sess.Cursor++
	return outcome, true
}

// run resolves and invokes the step's tool, converting every failure
// mode into a result string.
func (e *StepExecutor) run(ctx context.Context, intent string, step plan.Step) string {
	tool, ok := e.registry.Lookup(step.Action)
	if !ok {
		return fmt.Sprintf("Tool %q not found.", step.Action)
	}

	// The guard only covers plain-string navigation targets; record
	// inputs to other tools carry no URL to check.
	if step.Action == e.navigationAction && step.Input.Kind() == tools.InputScalar {
		url := step.Input.Scalar()
		if !e.guard.Allows(intent, url) {
			return fmt.Sprintf(
				"URL %q was BLOCKED: it does not match the expected domain for the intent %q, so navigation was not performed.",
				url, intent,
			)
		}
	}

	result, err := tool.Execute(ctx, step.Input)
	if err != nil {
		return fmt.Sprintf("Error executing %q: %v", step.Action, err)
	}
	return result
}
