package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/entrhq/surf/pkg/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `
<html><body>
<div class="results">
  <div class="result results_links web-result">
    <h2 class="result__title"><a href="/l/?u=1">YouTube</a></h2>
    <a class="result__url">youtube.com</a>
    <a class="result__snippet">Enjoy the videos and music you love.</a>
  </div>
  <div class="result results_links web-result">
    <h2 class="result__title"><a href="/l/?u=2">YouTube - Wikipedia</a></h2>
    <a class="result__url">https://en.wikipedia.org/wiki/YouTube</a>
    <a class="result__snippet">YouTube is an online video sharing platform.</a>
  </div>
  <div class="result">
    <span class="result__snippet">orphan snippet with no title or url</span>
  </div>
</div>
</body></html>`

func TestParseResults(t *testing.T) {
	results, err := ParseResults(strings.NewReader(resultsPage))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "YouTube", results[0].Title)
	assert.Equal(t, "https://youtube.com", results[0].URL, "scheme-less URLs are normalized")
	assert.Equal(t, "Enjoy the videos and music you love.", results[0].Snippet)

	assert.Equal(t, "https://en.wikipedia.org/wiki/YouTube", results[1].URL)
}

func TestParseResultsEmptyPage(t *testing.T) {
	results, err := ParseResults(strings.NewReader("<html><body><p>No results.</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchAgainstTestServer(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL+"/"), WithMaxResults(1))
	results, err := client.Search(context.Background(), "open youtube")
	require.NoError(t, err)

	assert.Equal(t, "open youtube", gotQuery)
	require.Len(t, results, 1, "max results is respected")
	assert.Equal(t, "YouTube", results[0].Title)
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL + "/"))
	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestSearchToolReturnsJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resultsPage))
	}))
	defer server.Close()

	tool := NewSearchTool(NewClient(WithBaseURL(server.URL + "/")))
	out, err := tool.Execute(context.Background(), tools.ScalarInput("youtube"))
	require.NoError(t, err)

	var decoded []Result
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 2)
}

func TestSearchToolRequiresQuery(t *testing.T) {
	tool := NewSearchTool(NewClient())

	_, err := tool.Execute(context.Background(), tools.NoInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}
