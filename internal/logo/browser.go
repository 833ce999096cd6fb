// Package logo extracts logos, brand colors, and brand text from a
// rendered web page.
package logo

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"bizworth/internal/domain"
)

// Page is one rendered page. Close releases the backing browser tab and is
// safe to call more than once.
type Page struct {
	URL        string
	HTML       string
	Screenshot []byte

	closeOnce sync.Once
	closeFn   context.CancelFunc
}

// Close releases the tab. Every Render caller must Close the page on all
// exit paths.
func (p *Page) Close() {
	p.closeOnce.Do(func() {
		if p.closeFn != nil {
			p.closeFn()
		}
	})
}

// Browser renders URLs into HTML plus a viewport screenshot.
type Browser interface {
	Render(ctx context.Context, url string) (*Page, error)
	Ready() bool
	Shutdown()
}

// ChromeBrowser drives a shared headless Chrome through chromedp. Each
// Render opens a fresh tab so concurrent requests do not share page state.
type ChromeBrowser struct {
	allocCtx    context.Context
	allocCancel context.CancelFunc
	navTimeout  time.Duration
	renderWait  time.Duration
}

// NewChromeBrowser starts the allocator for a headless Chrome instance.
// The browser process itself launches lazily on the first Render.
func NewChromeBrowser(navTimeout, renderWait time.Duration) *ChromeBrowser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &ChromeBrowser{
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		navTimeout:  navTimeout,
		renderWait:  renderWait,
	}
}

// Render navigates a new tab to the URL, waits briefly for scripts and
// images, and captures the DOM plus a screenshot. The returned page owns
// the tab; callers must Close it.
func (b *ChromeBrowser) Render(ctx context.Context, url string) (*Page, error) {
	tabCtx, tabCancel := chromedp.NewContext(b.allocCtx)
	runCtx, runCancel := context.WithTimeout(tabCtx, b.navTimeout)
	defer runCancel()

	page := &Page{URL: url, closeFn: tabCancel}

	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(b.renderWait),
		chromedp.OuterHTML("html", &page.HTML),
		chromedp.CaptureScreenshot(&page.Screenshot),
	)
	if err != nil {
		page.Close()
		log.Printf("logo.ChromeBrowser: render failed for %s: %v", url, err)
		return nil, err
	}
	if ctx.Err() != nil {
		page.Close()
		return nil, ctx.Err()
	}
	return page, nil
}

// Ready reports whether the allocator is still usable.
func (b *ChromeBrowser) Ready() bool { return b.allocCtx.Err() == nil }

// Shutdown tears down the allocator and any running Chrome process.
func (b *ChromeBrowser) Shutdown() { b.allocCancel() }

// DisabledBrowser is used when browser rendering is turned off in config.
type DisabledBrowser struct{}

func (DisabledBrowser) Render(context.Context, string) (*Page, error) {
	return nil, domain.ErrBrowserUnavailable
}
func (DisabledBrowser) Ready() bool { return false }
func (DisabledBrowser) Shutdown()   {}
