// Package agent implements the plan-execution control loop: intent
// analysis, plan generation, repeated step execution and validation,
// and final-answer synthesis. The Orchestrator owns all run state and
// drives an explicit state machine; model failures at any stage degrade
// to defined fallbacks, so a run that starts always reaches completion
// with a non-empty answer.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/surf/pkg/agent/guard"
	"github.com/entrhq/surf/pkg/agent/plan"
	"github.com/entrhq/surf/pkg/llm"
	"github.com/entrhq/surf/pkg/llm/parser"
	"github.com/entrhq/surf/pkg/llm/tokenizer"
	"github.com/entrhq/surf/pkg/logging"
	"github.com/entrhq/surf/pkg/tools"
	"github.com/entrhq/surf/pkg/types"
)

var agentLog *logging.Logger

func init() {
	var err error
	agentLog, err = logging.NewLogger("agent")
	if err != nil {
		// Logger fell back to stderr due to initialization failure
		agentLog.Warnf("Failed to initialize agent logger, using stderr fallback: %v", err)
	}
}

// State identifies a phase of the run. The machine is linear up to
// validation, which routes either back to execution or on to completion.
type State string

const (
	// StateIntentAnalysis resolves the user's request into an intent.
	StateIntentAnalysis State = "intent_analysis"

	// StatePlanGeneration produces the full step list before anything
	// executes.
	StatePlanGeneration State = "plan_generation"

	// StateToolExecution runs the step at the cursor.
	StateToolExecution State = "tool_execution"

	// StateValidation judges the last result and routes the run.
	StateValidation State = "validation"

	// StateCompletion synthesizes the final answer from the history.
	StateCompletion State = "completion"

	// StateDone is the terminal state.
	StateDone State = "done"
)

const (
	defaultNavigationAction = "open_url"
	defaultSearchAction     = "search_web"
	defaultMaxPlanSteps     = 12
)

// Orchestrator sequences one run at a time over a provider and a tool
// registry. It is not safe for concurrent runs on the same instance.
type Orchestrator struct {
	provider  llm.Provider
	registry  *tools.Registry
	guard     *guard.Guard
	executor  *StepExecutor
	validator *Validator
	tok       *tokenizer.Tokenizer
	sink      types.EventSink

	maxPlanSteps     int
	navigationAction string
	searchAction     string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEventSink sets the sink that receives progress events. The sink
// runs on the orchestrator's goroutine and must not block.
func WithEventSink(sink types.EventSink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithGuard sets the semantic guard applied to navigation steps.
func WithGuard(g *guard.Guard) Option {
	return func(o *Orchestrator) {
		o.guard = g
	}
}

// WithMaxPlanSteps caps the length of generated plans.
func WithMaxPlanSteps(max int) Option {
	return func(o *Orchestrator) {
		o.maxPlanSteps = max
	}
}

// WithTokenizer sets the tokenizer used for prompt trimming.
func WithTokenizer(tok *tokenizer.Tokenizer) Option {
	return func(o *Orchestrator) {
		o.tok = tok
	}
}

// WithNavigationAction overrides the action name subject to the
// semantic guard.
func WithNavigationAction(action string) Option {
	return func(o *Orchestrator) {
		o.navigationAction = action
	}
}

// WithSearchAction overrides the action name used by the fallback plan.
func WithSearchAction(action string) Option {
	return func(o *Orchestrator) {
		o.searchAction = action
	}
}

// New creates an orchestrator over the given provider and registry.
func New(provider llm.Provider, registry *tools.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		provider:         provider,
		registry:         registry,
		guard:            &guard.Guard{},
		maxPlanSteps:     defaultMaxPlanSteps,
		navigationAction: defaultNavigationAction,
		searchAction:     defaultSearchAction,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.tok == nil {
		o.tok = tokenizer.New()
	}
	o.executor = NewStepExecutor(registry, o.guard, o.navigationAction)
	o.validator = NewValidator(provider, o.tok)
	return o
}

// Run executes one full control loop for userInput and returns the
// final session state. The only error it returns is context
// cancellation; every model or tool failure is absorbed into the
// session per the fallback rules.
func (o *Orchestrator) Run(ctx context.Context, userInput string) (*Session, error) {
	sess := NewSession(userInput)
	agentLog.Infof("run %s started: %q", sess.RunID, userInput)

	for state := StateIntentAnalysis; state != StateDone; {
		if err := ctx.Err(); err != nil {
			agentLog.Warnf("run %s canceled in state %s: %v", sess.RunID, state, err)
			o.emit(types.NewErrorEvent(err))
			return sess, err
		}

		switch state {
		case StateIntentAnalysis:
			o.analyzeIntent(ctx, sess)
		case StatePlanGeneration:
			o.generatePlan(ctx, sess)
		case StateToolExecution:
			o.executeStep(ctx, sess)
		case StateValidation:
			o.validate(ctx, sess)
		case StateCompletion:
			o.complete(ctx, sess)
		}

		state = o.next(state, sess)
	}

	agentLog.Infof("run %s finished after %d step(s)", sess.RunID, len(sess.History))
	return sess, nil
}

// next is the transition function. Completion always wins over the
// verdict's continue flag once the plan is exhausted.
func (o *Orchestrator) next(s State, sess *Session) State {
	switch s {
	case StateIntentAnalysis:
		return StatePlanGeneration
	case StatePlanGeneration:
		return StateToolExecution
	case StateToolExecution:
		return StateValidation
	case StateValidation:
		verdict := sess.verdict
		sess.verdict = nil
		if sess.Cursor >= len(sess.Plan) {
			return StateCompletion
		}
		if verdict != nil && !verdict.CanContinue {
			return StateCompletion
		}
		return StateToolExecution
	case StateCompletion:
		return StateDone
	default:
		return StateDone
	}
}

// intentJSON is the loose wire shape of the intent-analysis answer.
type intentJSON struct {
	IntentSummary       string   `json:"intent_summary"`
	TargetDomain        *string  `json:"target_domain"`
	MainAction          string   `json:"main_action"`
	SemanticConstraints []string `json:"semantic_constraints"`
	NeedsSearch         bool     `json:"needs_search"`
}

// analyzeIntent resolves the intent, falling back to the raw request on
// any model or parse failure.
func (o *Orchestrator) analyzeIntent(ctx context.Context, sess *Session) {
	sess.Intent = sess.UserInput

	var details map[string]interface{}
	resp, err := o.provider.Complete(ctx, []*types.Message{
		types.NewUserMessage(intentPrompt(sess.UserInput)),
	})
	if err != nil {
		agentLog.Warnf("intent analysis call failed, using raw request: %v", err)
	} else {
		var wire intentJSON
		if err := parser.ExtractInto(resp.Content, &wire); err != nil {
			agentLog.Warnf("intent analysis returned no usable JSON, using raw request: %v", err)
		} else {
			if wire.IntentSummary != "" {
				sess.Intent = wire.IntentSummary
			}
			sess.IntentDetails = IntentDetails{
				Summary:             wire.IntentSummary,
				MainAction:          wire.MainAction,
				SemanticConstraints: wire.SemanticConstraints,
				NeedsSearch:         wire.NeedsSearch,
			}
			if wire.TargetDomain != nil {
				sess.IntentDetails.TargetDomain = *wire.TargetDomain
			}
			details = map[string]interface{}{
				"target_domain":        sess.IntentDetails.TargetDomain,
				"main_action":          sess.IntentDetails.MainAction,
				"semantic_constraints": sess.IntentDetails.SemanticConstraints,
				"needs_search":         sess.IntentDetails.NeedsSearch,
			}
		}
	}

	agentLog.Infof("run %s intent: %q", sess.RunID, sess.Intent)
	o.emit(types.NewIntentAnalyzedEvent(sess.Intent, details))
}

// generatePlan asks for the full plan up front. A failed call or
// undecodable answer falls back to a single search step; the run never
// proceeds with an empty plan.
func (o *Orchestrator) generatePlan(ctx context.Context, sess *Session) {
	fallback := false
	var p plan.Plan

	resp, err := o.provider.Complete(ctx, []*types.Message{
		types.NewUserMessage(planPrompt(sess.Intent, sess.UserInput, o.toolsDescription())),
	})
	if err == nil {
		p, err = plan.Decode(resp.Content)
	}
	if err != nil {
		agentLog.Warnf("plan generation failed, falling back to a single search step: %v", err)
		p = plan.Fallback(o.searchAction, sess.UserInput)
		fallback = true
	}

	sess.Plan = p.Truncate(o.maxPlanSteps)
	sess.Cursor = 0
	sess.History = nil

	agentLog.Infof("run %s plan: %d step(s), fallback=%t", sess.RunID, len(sess.Plan), fallback)
	o.emit(types.NewPlanGeneratedEvent(len(sess.Plan), fallback))
}

// executeStep delegates to the step executor and surfaces the outcome
// as events.
func (o *Orchestrator) executeStep(ctx context.Context, sess *Session) {
	if sess.Cursor < len(sess.Plan) {
		step := sess.Plan[sess.Cursor]
		o.emit(types.NewToolCallEvent(sess.Cursor+1, step.Action, step.Input.String()))
	}

	outcome, executed := o.executor.Execute(ctx, sess)
	if executed {
		agentLog.Infof("run %s step %d (%s): %s",
			sess.RunID, outcome.Step, outcome.Action, o.tok.Truncate(outcome.Result, stepResultBudget))
		o.emit(types.NewToolResultEvent(outcome.Step, outcome.Action, outcome.Result))
	}
}

// validate stores the cycle's verdict for the routing decision.
func (o *Orchestrator) validate(ctx context.Context, sess *Session) {
	verdict := o.validator.Validate(ctx, sess)
	sess.verdict = &verdict

	agentLog.Infof("run %s validated step %d: success=%t can_continue=%t",
		sess.RunID, sess.Cursor, verdict.Success, verdict.CanContinue)
	o.emit(types.NewValidationEvent(sess.Cursor, verdict.Success, verdict.CanContinue, verdict.Notes))
}

// complete synthesizes the final answer from the execution history. A
// failed model call still yields a non-empty answer built from the
// history itself.
func (o *Orchestrator) complete(ctx context.Context, sess *Session) {
	resp, err := o.provider.Complete(ctx, []*types.Message{
		types.NewUserMessage(completionPrompt(sess.UserInput, sess.Intent, o.historyText(sess))),
	})

	answer := ""
	if err == nil {
		answer = strings.TrimSpace(resp.Content)
	} else {
		agentLog.Warnf("completion call failed, synthesizing answer from history: %v", err)
	}
	if answer == "" {
		answer = fmt.Sprintf("Task executed with %d step(s). Last result: %s",
			len(sess.History), o.tok.Truncate(sess.LastResult, fallbackResultBudget))
	}

	sess.FinalAnswer = answer
	o.emit(types.NewCompletionEvent(answer))
}

// toolsDescription renders the registry for the planning prompt.
func (o *Orchestrator) toolsDescription() string {
	var b strings.Builder
	for _, t := range o.registry.List() {
		fmt.Fprintf(&b, "- %s: %s (input: %s)\n", t.Name(), t.Description(), t.Params().Describe())
	}
	return strings.TrimRight(b.String(), "\n")
}

// historyText renders the execution history for the completion prompt,
// trimming individual results and the whole block to token budgets.
func (o *Orchestrator) historyText(sess *Session) string {
	if len(sess.History) == 0 {
		return "(no steps executed)"
	}
	var b strings.Builder
	for _, h := range sess.History {
		fmt.Fprintf(&b, "Step %d (%s): %s\n", h.Step, h.Action, o.tok.Truncate(h.Result, stepResultBudget))
	}
	return o.tok.Truncate(strings.TrimRight(b.String(), "\n"), historyBudget)
}

// emit sends an event to the sink when one is configured.
func (o *Orchestrator) emit(ev *types.AgentEvent) {
	if o.sink != nil {
		o.sink(ev)
	}
}
