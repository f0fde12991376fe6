// Package websearch provides web search through DuckDuckGo's HTML
// endpoint. Results are scraped from the returned markup, so the package
// needs no API key; the trade-off is that parsing follows the endpoint's
// CSS class names and may need updating if they change.
package websearch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	// DefaultBaseURL is the DuckDuckGo HTML search endpoint.
	DefaultBaseURL = "https://html.duckduckgo.com/html/"

	// DefaultMaxResults caps how many results a search returns.
	DefaultMaxResults = 8

	// defaultTimeout bounds the whole search request.
	defaultTimeout = 10 * time.Second

	// userAgent is presented so the endpoint serves the plain HTML layout.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

// Result is a single search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Client performs searches against the DuckDuckGo HTML endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxResults int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the search endpoint, mainly for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithMaxResults caps the number of results returned per search.
func WithMaxResults(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// NewClient creates a search client with sane defaults.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs the query and returns the top results.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	endpoint := c.baseURL + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed with status %d", resp.StatusCode)
	}

	results, err := ParseResults(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(results) > c.maxResults {
		results = results[:c.maxResults]
	}
	return results, nil
}

// ParseResults extracts search hits from the endpoint's HTML markup.
// Each hit is a node with class "result"; title, URL, and snippet are the
// text of its "result__title", "result__url", and "result__snippet"
// descendants. Hits missing both a title and a URL are dropped.
func ParseResults(r io.Reader) ([]Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	var results []Result
	walk(doc, func(n *html.Node) {
		if !hasClass(n, "result") {
			return
		}

		result := Result{
			Title:   textOfClass(n, "result__title"),
			URL:     normalizeURL(textOfClass(n, "result__url")),
			Snippet: textOfClass(n, "result__snippet"),
		}
		if result.Title != "" || result.URL != "" {
			results = append(results, result)
		}
	})

	return results, nil
}

// normalizeURL prefixes scheme-less display URLs with https.
func normalizeURL(raw string) string {
	if raw == "" || strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

// walk applies fn to every element node in the tree.
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, fn)
	}
}

// hasClass reports whether an element node carries the given class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// textOfClass returns the trimmed text of the first descendant carrying
// the given class, or the empty string.
func textOfClass(n *html.Node, class string) string {
	var found *html.Node
	walk(n, func(candidate *html.Node) {
		if found == nil && hasClass(candidate, class) {
			found = candidate
		}
	})
	if found == nil {
		return ""
	}
	return strings.TrimSpace(textContent(found))
}

// textContent collects the text of a node's subtree.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return sb.String()
}
