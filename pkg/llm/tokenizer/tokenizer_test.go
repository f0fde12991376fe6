package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountApproximate(t *testing.T) {
	tok := NewApproximate()

	assert.Equal(t, 0, tok.Count(""))
	assert.Equal(t, 1, tok.Count("hi"))
	assert.Equal(t, 25, tok.Count(strings.Repeat("a", 100)))
}

func TestTruncateWithinBudget(t *testing.T) {
	tok := NewApproximate()

	text := "short result"
	assert.Equal(t, text, tok.Truncate(text, 100))
}

func TestTruncateOverBudget(t *testing.T) {
	tok := NewApproximate()

	text := strings.Repeat("result text ", 100)
	out := tok.Truncate(text, 10)

	assert.True(t, strings.HasSuffix(out, truncationMarker))
	assert.Less(t, len(out), len(text))
}

func TestTruncateZeroBudget(t *testing.T) {
	tok := NewApproximate()
	assert.Equal(t, "", tok.Truncate("anything", 0))
}

func TestTruncatePreservesRuneBoundary(t *testing.T) {
	tok := NewApproximate()

	text := strings.Repeat("é", 500)
	out := tok.Truncate(text, 10)

	trimmed := strings.TrimSuffix(out, truncationMarker)
	for _, r := range trimmed {
		assert.NotEqual(t, '�', r)
	}
}
