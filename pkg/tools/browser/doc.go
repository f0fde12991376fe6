// Package browser provides web browser automation tools backed by
// Playwright.
//
// The package is built around a single Session: an explicitly owned
// browser resource with an acquire/use/release lifecycle. The session is
// created once per agent run, passed by reference into each tool, and
// closed by the caller when the run ends. All page operations are
// serialized by the session's mutex — only one tool call is in flight at
// a time, matching the single-writer discipline of the agent loop.
//
// Tools follow the capability contract of pkg/tools: they answer with
// text and keep expected navigation failures inside the result string.
package browser
