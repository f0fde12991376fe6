// Package tokenizer provides token counting and budget truncation for
// prompt construction.
//
// Counting uses the cl100k_base BPE encoding via tiktoken. The encoding
// tables are fetched lazily by the tiktoken library; when they are
// unavailable (offline environments), the tokenizer degrades to a
// characters-per-token approximation so prompt trimming keeps working.
package tokenizer

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// encodingName is the BPE encoding used for counting.
	encodingName = "cl100k_base"

	// charsPerToken is the approximation ratio used when the real
	// encoding is unavailable. Four characters per token is the common
	// rule of thumb for English text.
	charsPerToken = 4

	// truncationMarker is appended to text trimmed by Truncate.
	truncationMarker = "\n[... truncated ...]"
)

// Tokenizer counts tokens and trims text to token budgets.
type Tokenizer struct {
	enc *tiktoken.Tiktoken
}

// New returns a tokenizer backed by the cl100k_base encoding, falling back
// to the character approximation when the encoding cannot be loaded.
func New() *Tokenizer {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return &Tokenizer{}
	}
	return &Tokenizer{enc: enc}
}

// NewApproximate returns a tokenizer that always uses the character
// approximation. Used in tests and offline environments.
func NewApproximate() *Tokenizer {
	return &Tokenizer{}
}

// Count returns the number of tokens in text.
func (t *Tokenizer) Count(text string) int {
	if t.enc != nil {
		return len(t.enc.Encode(text, nil, nil))
	}
	n := len(text) / charsPerToken
	if n == 0 && text != "" {
		n = 1
	}
	return n
}

// Truncate returns text trimmed to at most maxTokens tokens. Trimmed text
// ends with a truncation marker so prompts make the elision visible to the
// model. Text within budget is returned unchanged.
func (t *Tokenizer) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 || text == "" {
		return ""
	}

	if t.enc != nil {
		tokens := t.enc.Encode(text, nil, nil)
		if len(tokens) <= maxTokens {
			return text
		}
		return t.enc.Decode(tokens[:maxTokens]) + truncationMarker
	}

	budget := maxTokens * charsPerToken
	if len(text) <= budget {
		return text
	}
	// Cut on a rune boundary.
	cut := budget
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return strings.TrimRight(text[:cut], " \t\n") + truncationMarker
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
