// Package parser recovers structured output from free-form LLM text.
//
// Models asked for JSON routinely wrap it in prose, markdown fences, or
// trailing commentary. The extractor tries a sequence of increasingly
// permissive candidates and parses each independently, so a malformed
// candidate falls through to the next instead of failing the call.
package parser

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// errorPrefixLimit bounds how much of the offending text is carried in a
// NoStructuredOutputError for diagnostics.
const errorPrefixLimit = 300

// fencedBlockRe matches the first markdown code fence, optionally tagged json.
var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// NoStructuredOutputError indicates no candidate in the text parsed as JSON.
type NoStructuredOutputError struct {
	// Prefix holds the first characters of the offending text.
	Prefix string
}

func (e *NoStructuredOutputError) Error() string {
	return fmt.Sprintf("no valid JSON found in response: %s", e.Prefix)
}

// ExtractRaw returns the first syntactically valid JSON value embedded in
// text, as the raw bytes that parsed. Candidates are tried in order:
//
//  1. the first fenced code block (```json or bare ```)
//  2. the greedy array slice, from the first '[' to the last ']'
//  3. the greedy object slice, from the first '{' to the last '}'
//
// Each candidate is parsed independently; a failure falls through to the
// next. The function is total over arbitrary input: the only failure mode
// is a *NoStructuredOutputError.
func ExtractRaw(text string) (json.RawMessage, error) {
	if candidates := rawCandidates(text); len(candidates) > 0 {
		return candidates[0], nil
	}
	return nil, &NoStructuredOutputError{Prefix: boundPrefix(text)}
}

// Extract returns the first valid JSON value in text, decoded into the
// generic representation produced by encoding/json.
func Extract(text string) (interface{}, error) {
	raw, err := ExtractRaw(text)
	if err != nil {
		return nil, err
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		// Unreachable: raw already parsed once. Kept for safety.
		return nil, &NoStructuredOutputError{Prefix: string(raw)}
	}
	return value, nil
}

// ExtractInto decodes the first JSON candidate in text that fits v's
// shape, trying candidates in ExtractRaw's order. A candidate that
// parses as JSON but does not unmarshal into v falls through to the
// next: an un-fenced object whose fields contain arrays would otherwise
// be shadowed by the greedy array slice. v must be a non-nil pointer.
// The only failure mode is a *NoStructuredOutputError.
func ExtractInto(text string, v interface{}) error {
	candidates := rawCandidates(text)

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return &NoStructuredOutputError{Prefix: boundPrefix(text)}
	}

	for _, raw := range candidates {
		// Decode into a fresh value so a mismatched candidate cannot
		// leave partial state behind in v.
		tmp := reflect.New(rv.Type().Elem())
		if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
			continue
		}
		rv.Elem().Set(tmp.Elem())
		return nil
	}

	if len(candidates) > 0 {
		return &NoStructuredOutputError{Prefix: boundPrefix(string(candidates[0]))}
	}
	return &NoStructuredOutputError{Prefix: boundPrefix(text)}
}

// rawCandidates returns every syntactically valid JSON candidate in
// text, in extraction order.
func rawCandidates(text string) []json.RawMessage {
	var out []json.RawMessage

	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		if raw, ok := tryParse(m[1]); ok {
			out = append(out, raw)
		}
	}
	if candidate, ok := greedySlice(text, '[', ']'); ok {
		if raw, ok := tryParse(candidate); ok {
			out = append(out, raw)
		}
	}
	if candidate, ok := greedySlice(text, '{', '}'); ok {
		if raw, ok := tryParse(candidate); ok {
			out = append(out, raw)
		}
	}
	return out
}

// tryParse validates a candidate and returns it as raw JSON when it parses.
func tryParse(candidate string) (json.RawMessage, bool) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return nil, false
	}
	if !json.Valid([]byte(candidate)) {
		return nil, false
	}
	return json.RawMessage(candidate), true
}

// greedySlice returns the substring from the first open delimiter to the
// last close delimiter, mirroring a greedy regex match.
func greedySlice(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexByte(text, close)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// boundPrefix trims text to the diagnostic prefix limit.
func boundPrefix(text string) string {
	if len(text) > errorPrefixLimit {
		return text[:errorPrefixLimit]
	}
	return text
}
