package types

import (
	"errors"
	"testing"
)

func TestAgentEventType(t *testing.T) {
	tests := []struct {
		eventType AgentEventType
		name      string
		expected  string
	}{
		{
			name:      "intent_analyzed",
			eventType: EventTypeIntentAnalyzed,
			expected:  "intent_analyzed",
		},
		{
			name:      "plan_generated",
			eventType: EventTypePlanGenerated,
			expected:  "plan_generated",
		},
		{
			name:      "tool_call",
			eventType: EventTypeToolCall,
			expected:  "tool_call",
		},
		{
			name:      "tool_result",
			eventType: EventTypeToolResult,
			expected:  "tool_result",
		},
		{
			name:      "validation",
			eventType: EventTypeValidation,
			expected:  "validation",
		},
		{
			name:      "completion",
			eventType: EventTypeCompletion,
			expected:  "completion",
		},
		{
			name:      "error",
			eventType: EventTypeError,
			expected:  "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.eventType) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, string(tt.eventType))
			}
		})
	}
}

func TestNewToolCallEvent(t *testing.T) {
	event := NewToolCallEvent(2, "open_url", "https://example.com")

	if event.Type != EventTypeToolCall {
		t.Errorf("expected tool_call type, got %s", event.Type)
	}
	if event.Step != 2 {
		t.Errorf("expected step 2, got %d", event.Step)
	}
	if event.Action != "open_url" {
		t.Errorf("expected action open_url, got %s", event.Action)
	}
	if event.Content != "https://example.com" {
		t.Errorf("unexpected content: %s", event.Content)
	}
}

func TestNewValidationEvent(t *testing.T) {
	event := NewValidationEvent(1, true, false, "page loaded")

	if event.Type != EventTypeValidation {
		t.Errorf("expected validation type, got %s", event.Type)
	}
	if event.Metadata["success"] != true {
		t.Error("expected success metadata to be true")
	}
	if event.Metadata["can_continue"] != false {
		t.Error("expected can_continue metadata to be false")
	}
}

func TestNewPlanGeneratedEvent(t *testing.T) {
	event := NewPlanGeneratedEvent(3, true)

	if event.Metadata["steps"] != 3 {
		t.Errorf("expected 3 steps in metadata, got %v", event.Metadata["steps"])
	}
	if event.Metadata["fallback"] != true {
		t.Error("expected fallback metadata to be true")
	}
}

func TestNewErrorEvent(t *testing.T) {
	err := errors.New("browser crashed")
	event := NewErrorEvent(err)

	if !event.IsError() {
		t.Error("expected IsError to be true")
	}
	if event.Error != err {
		t.Error("expected error to be preserved")
	}
}

func TestIsErrorOnNonErrorEvent(t *testing.T) {
	event := NewCompletionEvent("done")
	if event.IsError() {
		t.Error("completion event should not report as error")
	}
}
