package types

// AgentEventType defines the type of event emitted by the agent run.
type AgentEventType string

const (
	EventTypeIntentAnalyzed AgentEventType = "intent_analyzed" // EventTypeIntentAnalyzed indicates the user's intent has been resolved.
	EventTypePlanGenerated  AgentEventType = "plan_generated"  // EventTypePlanGenerated indicates an execution plan has been produced.
	EventTypeToolCall       AgentEventType = "tool_call"       // EventTypeToolCall indicates a plan step is about to invoke a tool.
	EventTypeToolResult     AgentEventType = "tool_result"     // EventTypeToolResult indicates a plan step recorded its outcome.
	EventTypeValidation     AgentEventType = "validation"      // EventTypeValidation indicates a step outcome has been validated.
	EventTypeCompletion     AgentEventType = "completion"      // EventTypeCompletion indicates the final answer has been synthesized.
	EventTypeError          AgentEventType = "error"           // EventTypeError indicates a harness-level error occurred.
)

// AgentEvent represents a single progress event emitted while a run executes.
// Events are a presentation concern: the orchestrator emits them through an
// optional sink and never blocks on them.
type AgentEvent struct {
	// Type indicates the kind of event.
	Type AgentEventType

	// Content holds the primary text payload (intent summary, tool result,
	// final answer, etc.).
	Content string

	// Step is the 1-based plan ordinal for tool call/result/validation events.
	Step int

	// Action is the tool action name for tool events.
	Action string

	// Metadata holds optional additional information about the event.
	Metadata map[string]interface{}

	// Error contains error information for error events.
	Error error
}

// EventSink receives agent events. Implementations must not block;
// the run executes on the caller's goroutine.
type EventSink func(*AgentEvent)

// NewIntentAnalyzedEvent creates an event for a resolved intent.
func NewIntentAnalyzedEvent(intent string, details map[string]interface{}) *AgentEvent {
	return &AgentEvent{
		Type:     EventTypeIntentAnalyzed,
		Content:  intent,
		Metadata: details,
	}
}

// NewPlanGeneratedEvent creates an event for a generated plan.
// The metadata carries the step count and whether the fallback plan was used.
func NewPlanGeneratedEvent(steps int, fallback bool) *AgentEvent {
	return &AgentEvent{
		Type: EventTypePlanGenerated,
		Metadata: map[string]interface{}{
			"steps":    steps,
			"fallback": fallback,
		},
	}
}

// NewToolCallEvent creates an event for a tool invocation.
func NewToolCallEvent(step int, action, input string) *AgentEvent {
	return &AgentEvent{
		Type:    EventTypeToolCall,
		Step:    step,
		Action:  action,
		Content: input,
	}
}

// NewToolResultEvent creates an event for a recorded step outcome.
func NewToolResultEvent(step int, action, result string) *AgentEvent {
	return &AgentEvent{
		Type:    EventTypeToolResult,
		Step:    step,
		Action:  action,
		Content: result,
	}
}

// NewValidationEvent creates an event for a validation verdict.
func NewValidationEvent(step int, success, canContinue bool, notes string) *AgentEvent {
	return &AgentEvent{
		Type:    EventTypeValidation,
		Step:    step,
		Content: notes,
		Metadata: map[string]interface{}{
			"success":      success,
			"can_continue": canContinue,
		},
	}
}

// NewCompletionEvent creates an event for the synthesized final answer.
func NewCompletionEvent(answer string) *AgentEvent {
	return &AgentEvent{
		Type:    EventTypeCompletion,
		Content: answer,
	}
}

// NewErrorEvent creates an error event.
func NewErrorEvent(err error) *AgentEvent {
	return &AgentEvent{
		Type:  EventTypeError,
		Error: err,
	}
}

// IsError returns true if this is an error event.
func (e *AgentEvent) IsError() bool {
	return e.Type == EventTypeError
}
