// Package rod provides a browser-based implementation of
// leadgen.Fetcher using Chrome automation. It renders JavaScript, which
// gets past basic bot checks on search engines and directories that
// serve empty shells to plain HTTP clients.
package rod

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/leadgen"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the number of pages fetched before the browser is
// recycled. Chrome accumulates memory over time and the baseline never
// returns to initial levels even with proper page cleanup.
const DefaultMaxPages = 75

// Ensure Fetcher implements leadgen.Fetcher at compile time.
var _ leadgen.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation, recycling the browser after maxPages pages. Fetcher is
// safe for concurrent use by multiple goroutines.
type Fetcher struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	closed    bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets the number of pages before browser recycling.
// Defaults to DefaultMaxPages if not specified.
func WithMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launchBrowser(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML. The
// response status is not observable through the rendering pipeline, so
// a successfully rendered page reports status 200.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*leadgen.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := f.acquireBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	finalURL := url
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	f.mu.Lock()
	f.pageCount++
	f.mu.Unlock()

	return &leadgen.FetchResult{
		StatusCode: 200,
		Body:       html,
		FinalURL:   finalURL,
	}, nil
}

// Close releases browser resources. Close is safe to call multiple
// times.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	return f.closeBrowser()
}

// acquireBrowser returns the current browser, recycling it when the
// page count has reached maxPages.
func (f *Fetcher) acquireBrowser() (*rod.Browser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "fetcher is closed")
	}
	if f.pageCount >= f.maxPages {
		if err := f.closeBrowser(); err != nil {
			return nil, err
		}
		if err := f.launchBrowser(); err != nil {
			return nil, err
		}
		f.pageCount = 0
	}
	return f.browser, nil
}

// launchBrowser starts a new browser instance with stability flags.
func (f *Fetcher) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = lnchr
	return nil
}

func (f *Fetcher) closeBrowser() error {
	if f.browser == nil {
		return nil
	}
	err := f.browser.Close()
	if f.launcher != nil {
		f.launcher.Kill()
	}
	f.browser = nil
	f.launcher = nil
	return err
}
