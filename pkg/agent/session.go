package agent

import (
	"github.com/google/uuid"

	"github.com/entrhq/surf/pkg/agent/plan"
	"github.com/entrhq/surf/pkg/tools"
)

// IntentDetails is the structured breakdown of the user's request
// produced by intent analysis. Every field is optional in the model's
// output; absent fields stay at their zero value.
type IntentDetails struct {
	// Summary restates what the user wants to do.
	Summary string

	// TargetDomain names the service or site the user asked for, empty
	// when the request does not pin one down.
	TargetDomain string

	// MainAction is the dominant verb of the request (navigate, click,
	// fill, extract, ...).
	MainAction string

	// SemanticConstraints are restrictions the plan must honor, e.g.
	// "use only youtube.com, not alternative sites".
	SemanticConstraints []string

	// NeedsSearch indicates the request requires discovering a URL
	// before navigating.
	NeedsSearch bool
}

// ExecutionOutcome records one executed plan step. Outcomes are
// appended to the session history and never edited or removed.
type ExecutionOutcome struct {
	// Step is the 1-based position of the step in the plan.
	Step int

	// Action is the tool action name the step requested.
	Action string

	// Input is the payload the step carried.
	Input tools.Input

	// Result is the tool's textual result, or a descriptive failure /
	// blocked marker when the step did not run cleanly.
	Result string

	// Description is the step's human-readable summary.
	Description string
}

// Verdict is the Validator's per-cycle decision. It lives for exactly
// one routing decision and is then discarded.
type Verdict struct {
	// Success indicates the last result looks like it achieved its step.
	Success bool

	// CanContinue indicates it is safe to execute the next step.
	CanContinue bool

	// Notes holds free-text observations about the result.
	Notes string

	// ExtractedInfo holds useful information pulled from the result
	// (a discovered URL, visible elements, ...).
	ExtractedInfo string
}

// Session is the full mutable state of one agent run. It is owned by
// the Orchestrator and mutated by exactly one goroutine; callers read
// it only after Run returns.
type Session struct {
	// RunID uniquely identifies this run in logs and output.
	RunID string

	// UserInput is the raw request text.
	UserInput string

	// Intent is the resolved intent summary, falling back to UserInput
	// when intent analysis fails.
	Intent string

	// IntentDetails carries the structured intent breakdown.
	IntentDetails IntentDetails

	// Plan is the ordered step list. Generated once; replaced wholesale,
	// never edited in place.
	Plan plan.Plan

	// Cursor is the index of the next step to execute. It only ever
	// moves forward, by exactly one per executed step.
	Cursor int

	// LastResult is the result text of the most recently executed step.
	LastResult string

	// History holds one ExecutionOutcome per executed step, in order.
	History []ExecutionOutcome

	// FinalAnswer is the synthesized summary set by completion. It is
	// always non-empty once a run finishes.
	FinalAnswer string

	// verdict is the transient validation verdict for the current
	// cycle, consumed by the routing decision.
	verdict *Verdict
}

// NewSession creates the state for a fresh run.
func NewSession(userInput string) *Session {
	return &Session{
		RunID:     uuid.New().String(),
		UserInput: userInput,
	}
}
