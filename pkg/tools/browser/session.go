package browser

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Default values for session operations.
const (
	DefaultTimeout        = 30000.0 // milliseconds
	DefaultSelectorWait   = 5000.0  // milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
	DefaultSettleDelay    = 1500 * time.Millisecond
	DefaultTypeDelay      = 50.0 // milliseconds between keystrokes

	// desktopUserAgent is presented to pages so they serve their regular
	// desktop layout.
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/120.0.0.0 Safari/537.36"
)

// Options configures a new browser session.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// Timeout is the default timeout for page operations, in milliseconds.
	// Zero means DefaultTimeout.
	Timeout float64

	// SettleDelay is the pause after navigation and clicks, giving
	// client-side rendering time to finish. Zero means DefaultSettleDelay.
	SettleDelay time.Duration
}

// Session is the browser resource shared by the browser tools for the
// lifetime of one agent run. It owns the Playwright driver, browser,
// context, and page, and serializes all operations with a mutex.
type Session struct {
	mu sync.Mutex

	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page

	headless    bool
	settleDelay time.Duration
	closed      bool
}

// Launch installs and starts Playwright, launches Chromium, and opens a
// page. The returned session must be released with Close.
func Launch(opts Options) (*Session, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = DefaultSettleDelay
	}

	// Discard driver output so it does not interleave with run rendering.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return nil, fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	b, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := b.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		},
		UserAgent: playwright.String(desktopUserAgent),
	})
	if err != nil {
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		b.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(opts.Timeout)

	return &Session{
		pw:          pw,
		browser:     b,
		context:     context,
		page:        page,
		headless:    opts.Headless,
		settleDelay: opts.SettleDelay,
	}, nil
}

// Close releases the page, context, browser, and driver. Safe to call more
// than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	_ = s.page.Close()
	_ = s.context.Close()
	_ = s.browser.Close()

	if err := s.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}

// Navigate loads url and waits for the DOM plus a settle delay, then
// returns the page title and the final URL after redirects.
func (s *Session) Navigate(url string) (title, finalURL string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return "", "", fmt.Errorf("navigation failed: %w", err)
	}
	time.Sleep(s.settleDelay)

	title, err = s.page.Title()
	if err != nil {
		title = ""
	}
	return title, s.page.URL(), nil
}

// Click clicks the element matching selector. When the CSS selector does
// not resolve, it falls back to matching visible text (a "text=" prefix on
// the selector is stripped first). Returns the URL after the click, which
// may have changed if the click triggered navigation.
func (s *Session) Click(selector string) (currentURL string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, waitErr := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(DefaultSelectorWait),
	})
	if waitErr == nil {
		if clickErr := s.page.Click(selector); clickErr == nil {
			time.Sleep(s.settleDelay)
			return s.page.URL(), nil
		}
	}

	// Fallback: locate a visible element by its text content.
	text := strings.TrimSpace(strings.TrimPrefix(selector, "text="))
	locator := s.page.GetByText(text).First()
	if err := locator.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(DefaultSelectorWait),
	}); err != nil {
		return "", fmt.Errorf("click failed for %q: %w", selector, err)
	}
	time.Sleep(s.settleDelay)
	return s.page.URL(), nil
}

// Type clears the input matching selector and types text into it with a
// per-keystroke delay to behave like a human typist.
func (s *Session) Type(selector, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(DefaultSelectorWait),
	})
	if err != nil {
		return fmt.Errorf("input %q not visible: %w", selector, err)
	}

	if err := s.page.Fill(selector, ""); err != nil {
		return fmt.Errorf("failed to clear %q: %w", selector, err)
	}
	if err := s.page.Type(selector, text, playwright.PageTypeOptions{
		Delay: playwright.Float(DefaultTypeDelay),
	}); err != nil {
		return fmt.Errorf("failed to type into %q: %w", selector, err)
	}
	return nil
}

// Evaluate runs a JavaScript expression in the page and returns its value.
func (s *Session) Evaluate(script string) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.page.Evaluate(script)
	if err != nil {
		return nil, fmt.Errorf("evaluate failed: %w", err)
	}
	return result, nil
}

// Scroll scrolls the page vertically by delta pixels (negative scrolls up)
// and waits briefly for lazy-loaded content.
func (s *Session) Scroll(delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	script := fmt.Sprintf("() => window.scrollBy(0, %d)", delta)
	if _, err := s.page.Evaluate(script); err != nil {
		return fmt.Errorf("scroll failed: %w", err)
	}
	time.Sleep(s.settleDelay / 2)
	return nil
}

// URL returns the current page URL.
func (s *Session) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.URL()
}
