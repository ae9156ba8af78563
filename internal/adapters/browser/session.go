// Package browser wraps chromedp behind the small surface the scrape
// framework needs: navigate, activate, scroll, snapshot.
package browser

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

const userAgent = `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36`

// Browser builds isolated headless sessions. Sessions are scoped to exactly
// one adapter call and are never pooled or reused.
type Browser struct {
	navTimeout time.Duration
	settle     time.Duration
}

func New(navTimeout, settle time.Duration) *Browser {
	if navTimeout <= 0 {
		navTimeout = 30 * time.Second
	}
	if settle <= 0 {
		settle = 2 * time.Second
	}
	return &Browser{navTimeout: navTimeout, settle: settle}
}

// Session is one live headless-browser tab. Close must be called on every
// path, success or failure.
type Session struct {
	ctx     context.Context
	settle  time.Duration
	timeout time.Duration
	cancels []context.CancelFunc
}

// NewSession spins up a fresh allocator and tab under ctx.
func (b *Browser) NewSession(ctx context.Context) *Session {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	return &Session{
		ctx:     tabCtx,
		settle:  b.settle,
		timeout: b.navTimeout,
		cancels: []context.CancelFunc{cancelTab, cancelAlloc},
	}
}

// Close releases the tab and its allocator.
func (s *Session) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// run executes actions bounded by d (falls back to the session timeout).
func (s *Session) run(d time.Duration, actions ...chromedp.Action) error {
	if d <= 0 {
		d = s.timeout
	}
	ctx, cancel := context.WithTimeout(s.ctx, d)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Navigate loads url and waits for the document body to be ready.
func (s *Session) Navigate(url string) error {
	return s.run(0,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

// ClickAny tries each selector in order and clicks the first one present.
// Selectors starting with "//" are treated as XPath. Returns false without
// error when nothing matches; absence is tolerated by callers.
func (s *Session) ClickAny(selectors []string) (bool, error) {
	for _, sel := range selectors {
		var nodes []*cdp.Node
		by := chromedp.ByQueryAll
		if strings.HasPrefix(sel, "//") {
			by = chromedp.BySearch
		}
		err := s.run(10*time.Second,
			chromedp.Nodes(sel, &nodes, by, chromedp.AtLeast(0)),
		)
		if err != nil {
			return false, err
		}
		if len(nodes) == 0 {
			continue
		}
		if err := s.run(10*time.Second, chromedp.MouseClickNode(nodes[0])); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// ScrollBottom scrolls the page to the bottom to trigger lazy loading.
func (s *Session) ScrollBottom() error {
	return s.run(10*time.Second,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
	)
}

// Settle waits the fixed settle delay for in-flight rendering to finish.
func (s *Session) Settle() error {
	return s.run(s.settle+5*time.Second, chromedp.Sleep(s.settle))
}

// HTML snapshots the full page markup.
func (s *Session) HTML() (string, error) {
	var html string
	err := s.run(0, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, err
}
