// Package guard decides whether a navigation target is consistent with
// the user's stated intent. It exists because language models
// occasionally hallucinate plausible-looking URLs (mirror sites,
// typo-squats) when the user asked for a specific service; blocking
// those before navigation is cheaper than recovering after.
//
// The guard is allow-by-default: a URL is rejected only when a rule
// positively identifies a mismatch. It is scoped to navigation — no
// other tool action is checked.
package guard

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// knownDomains are services the guard recognizes by bare name. If the
// intent mentions the name ("google", "github", ...) the navigation URL
// must be on the full domain or a subdomain of it.
var knownDomains = []string{
	"google.com",
	"instagram.com",
	"facebook.com",
	"twitter.com",
	"linkedin.com",
	"github.com",
	"amazon.com",
}

// Guard checks candidate URLs against the resolved intent and an
// optional deny list. The zero value is usable and applies only the
// built-in intent rules.
type Guard struct {
	deny []glob.Glob
}

// New compiles the given deny patterns into a Guard. Patterns use glob
// syntax and are matched against the lowercased URL ("*.mirror.example/*").
// An invalid pattern is an error so configuration mistakes surface at
// startup, not mid-run.
func New(denyPatterns []string) (*Guard, error) {
	g := &Guard{}
	for _, pattern := range denyPatterns {
		compiled, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid deny pattern %q: %w", pattern, err)
		}
		g.deny = append(g.deny, compiled)
	}
	return g, nil
}

// Allows reports whether navigating to rawURL is consistent with intent.
//
// Rules, in order:
//  1. A URL matching any configured deny pattern is rejected outright.
//  2. If the intent mentions "youtube", the URL's host must be
//     youtube.com or a subdomain of it.
//  3. If the intent mentions a known service by bare name, the URL's
//     host must be that service's domain or a subdomain of it.
//  4. Otherwise the URL is allowed.
//
// Host matching is exact-or-subdomain, never substring: a lookalike
// such as notgoogle.com does not satisfy the google.com rule. A URL
// whose host cannot be determined fails any domain rule the intent
// triggers.
//
// The check is a pure function of (intent, rawURL) plus the deny list;
// it performs no I/O.
func (g *Guard) Allows(intent, rawURL string) bool {
	intentLower := strings.ToLower(intent)
	urlLower := strings.ToLower(rawURL)

	for _, pattern := range g.deny {
		if pattern.Match(urlLower) {
			return false
		}
	}

	host := urlHost(rawURL)

	if strings.Contains(intentLower, "youtube") && !hostOnDomain(host, "youtube.com") {
		return false
	}

	for _, domain := range knownDomains {
		name := domain[:strings.IndexByte(domain, '.')]
		if strings.Contains(intentLower, name) && !hostOnDomain(host, domain) {
			return false
		}
	}

	return true
}

// urlHost extracts the lowercased hostname from a candidate URL,
// tolerating scheme-less values like "youtube.com/watch". It returns
// the empty string when no host can be determined.
func urlHost(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		u, err = url.Parse("https://" + strings.TrimSpace(rawURL))
		if err != nil {
			return ""
		}
	}
	return strings.ToLower(u.Hostname())
}

// hostOnDomain reports whether host is domain itself or a subdomain of
// it. An empty host never matches.
func hostOnDomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
