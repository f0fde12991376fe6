// Package tools defines the capability contract shared by every action the
// agent can plan: a named tool with a declared parameter shape, invoked
// with a discriminated scalar/record input and always answering with text.
//
// Tool failures are part of the data flow, not the control flow: a tool
// may return an error for unexpected runtime faults, but the step executor
// converts it into a textual outcome and the run keeps moving.
package tools

import (
	"context"
	"fmt"
	"strings"
)

// Tool represents a capability that the agent can invoke from a plan step.
type Tool interface {
	// Name returns the unique action name used in plans (e.g., "open_url").
	Name() string

	// Description returns a human-readable description of what this tool
	// does. It is surfaced to the planning prompt so the model knows what
	// it can request.
	Description() string

	// Params returns the tool's declared parameter shape. Dispatch resolves
	// the incoming input variant against this shape.
	Params() ParamSpec

	// Execute runs the tool. The returned string is the result surfaced to
	// validation and history; tools report expected failures (page not
	// found, element missing) inside that string and reserve the error for
	// unexpected runtime faults.
	Execute(ctx context.Context, input Input) (string, error)
}

// ParamKind discriminates a tool's declared input shape.
type ParamKind int

const (
	// ParamsNone declares a tool invoked without input.
	ParamsNone ParamKind = iota

	// ParamsScalar declares a single-value input.
	ParamsScalar

	// ParamsRecord declares a named-field input.
	ParamsRecord
)

// Param describes one declared parameter.
type Param struct {
	Name        string
	Description string
	Required    bool
}

// ParamSpec is a tool's declared parameter shape.
type ParamSpec struct {
	Kind   ParamKind
	Scalar Param   // populated when Kind == ParamsScalar
	Fields []Param // populated when Kind == ParamsRecord
}

// NoParams declares an input-less tool.
func NoParams() ParamSpec {
	return ParamSpec{Kind: ParamsNone}
}

// ScalarParam declares a single-value input.
func ScalarParam(name, description string) ParamSpec {
	return ParamSpec{
		Kind:   ParamsScalar,
		Scalar: Param{Name: name, Description: description, Required: true},
	}
}

// RecordParams declares a named-field input.
func RecordParams(fields ...Param) ParamSpec {
	return ParamSpec{Kind: ParamsRecord, Fields: fields}
}

// Describe renders the shape for the planning prompt, e.g.
// `query: the search terms` or `{selector, text}`.
func (s ParamSpec) Describe() string {
	switch s.Kind {
	case ParamsScalar:
		return fmt.Sprintf("%s: %s", s.Scalar.Name, s.Scalar.Description)
	case ParamsRecord:
		names := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			names = append(names, f.Name)
		}
		return "{" + strings.Join(names, ", ") + "}"
	default:
		return "no input"
	}
}
