package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// InputKind discriminates the shape of a tool input.
type InputKind int

const (
	// InputNone means the tool was invoked without a payload.
	InputNone InputKind = iota

	// InputScalar is a single text value.
	InputScalar

	// InputRecord is a set of named text fields for multi-parameter tools.
	InputRecord
)

// Input is the discriminated payload passed to a tool. Plans produced by
// the model carry inputs as either a bare JSON string or an object; Input
// normalizes both into an explicit variant so dispatch never inspects
// dynamic types.
type Input struct {
	kind   InputKind
	scalar string
	fields map[string]string
}

// NoInput returns the empty payload.
func NoInput() Input {
	return Input{kind: InputNone}
}

// ScalarInput returns a single-value payload.
func ScalarInput(value string) Input {
	return Input{kind: InputScalar, scalar: value}
}

// RecordInput returns a named-field payload. The map is copied.
func RecordInput(fields map[string]string) Input {
	copied := make(map[string]string, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Input{kind: InputRecord, fields: copied}
}

// Kind returns the input's discriminant.
func (in Input) Kind() InputKind {
	return in.kind
}

// Scalar returns the scalar value. For record inputs it returns the empty
// string; callers should check Kind first.
func (in Input) Scalar() string {
	return in.scalar
}

// Field returns a named field value and whether it was present.
func (in Input) Field(name string) (string, bool) {
	v, ok := in.fields[name]
	return v, ok
}

// FieldOr returns a named field value, or fallback when absent or empty.
func (in Input) FieldOr(name, fallback string) string {
	if v, ok := in.fields[name]; ok && v != "" {
		return v
	}
	return fallback
}

// String renders the input as text: scalars verbatim, records as
// stable-ordered key=value pairs. Used for logging and outcome records.
func (in Input) String() string {
	switch in.kind {
	case InputScalar:
		return in.scalar
	case InputRecord:
		keys := make([]string, 0, len(in.fields))
		for k := range in.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%q", k, in.fields[k]))
		}
		return strings.Join(parts, " ")
	default:
		return ""
	}
}

// UnmarshalJSON accepts the loose plan wire shape: a JSON string becomes a
// scalar, an object becomes a record with every value coerced to text, and
// null becomes the empty payload. Any other shape (bare number, array) is
// coerced to a scalar of its literal text rather than rejected — plan
// inputs are data, not control flow.
func (in *Input) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*in = NoInput()
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*in = ScalarInput(s)
		return nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var raw map[string]interface{}
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		fields := make(map[string]string, len(raw))
		for k, v := range raw {
			fields[k] = coerceToString(v)
		}
		*in = Input{kind: InputRecord, fields: fields}
		return nil
	default:
		*in = ScalarInput(string(trimmed))
		return nil
	}
}

// MarshalJSON round-trips the wire shape.
func (in Input) MarshalJSON() ([]byte, error) {
	switch in.kind {
	case InputScalar:
		return json.Marshal(in.scalar)
	case InputRecord:
		return json.Marshal(in.fields)
	default:
		return []byte("null"), nil
	}
}

// coerceToString renders a decoded JSON value as text.
func coerceToString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%v", val)
	default:
		// Nested objects/arrays are kept as compact JSON text.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
