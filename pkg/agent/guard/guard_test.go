package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowsIntentRules(t *testing.T) {
	g, err := New(nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		intent string
		url    string
		want   bool
	}{
		{
			name:   "youtube intent to youtube url",
			intent: "open youtube",
			url:    "https://youtube.com/watch?v=1",
			want:   true,
		},
		{
			name:   "youtube intent to a different video site",
			intent: "open youtube",
			url:    "https://vimeo.com/x",
			want:   false,
		},
		{
			name:   "youtube intent to a mirror domain",
			intent: "Open YouTube and play a video",
			url:    "https://youtube-mirror.net",
			want:   false,
		},
		{
			name:   "unconstrained intent allows anything",
			intent: "search recipes",
			url:    "https://anything.example",
			want:   true,
		},
		{
			name:   "google intent to a lookalike",
			intent: "open google",
			url:    "https://notgoogle.com",
			want:   false,
		},
		{
			name:   "youtube intent to a lookalike host",
			intent: "open youtube",
			url:    "https://notyoutube.com/watch",
			want:   false,
		},
		{
			name:   "youtube intent to a youtube subdomain",
			intent: "open youtube",
			url:    "https://www.youtube.com/watch?v=1",
			want:   true,
		},
		{
			name:   "youtube intent to a scheme-less youtube url",
			intent: "open youtube",
			url:    "youtube.com/watch?v=1",
			want:   true,
		},
		{
			name:   "google intent to a host that embeds the domain as a prefix",
			intent: "open google",
			url:    "https://google.com.evil.example/login",
			want:   false,
		},
		{
			name:   "youtube intent to youtube domain in the path only",
			intent: "open youtube",
			url:    "https://evil.example/youtube.com",
			want:   false,
		},
		{
			name:   "google intent to google",
			intent: "open google and search for shoes",
			url:    "https://www.google.com/search?q=shoes",
			want:   true,
		},
		{
			name:   "github intent to github subpage",
			intent: "check my GitHub notifications",
			url:    "https://github.com/notifications",
			want:   true,
		},
		{
			name:   "case-insensitive intent match",
			intent: "Open LinkedIn",
			url:    "https://example.com/linked",
			want:   false,
		},
		{
			name:   "empty intent allows anything",
			intent: "",
			url:    "https://example.com",
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Allows(tt.intent, tt.url))
		})
	}
}

func TestAllowsIsPure(t *testing.T) {
	g, err := New(nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.False(t, g.Allows("open youtube", "https://vimeo.com/x"))
		assert.True(t, g.Allows("open youtube", "https://youtube.com/watch?v=1"))
	}
}

func TestDenyPatterns(t *testing.T) {
	g, err := New([]string{"*tracker.example*", "*.ads.example/*"})
	require.NoError(t, err)

	assert.False(t, g.Allows("read the news", "https://tracker.example/pixel"))
	assert.False(t, g.Allows("read the news", "https://cdn.ads.example/banner"))
	assert.True(t, g.Allows("read the news", "https://news.example/today"))

	// Deny patterns win even when the intent rules would allow.
	g, err = New([]string{"*youtube.com*"})
	require.NoError(t, err)
	assert.False(t, g.Allows("open youtube", "https://youtube.com/watch?v=1"))
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	_, err := New([]string{"[unclosed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid deny pattern")
}

func TestZeroValueGuard(t *testing.T) {
	var g Guard
	assert.True(t, g.Allows("anything", "https://example.com"))
	assert.False(t, g.Allows("open youtube", "https://vimeo.com"))
}
