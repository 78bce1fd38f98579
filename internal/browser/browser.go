// Package browser loads job pages in headless Chrome and hands back
// the rendered markup plus visible text.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// ErrFetchTimeout means the page did not reach a stable state within
// the configured timeout. Callers degrade to an empty posting rather
// than abort the run.
var ErrFetchTimeout = errors.New("page fetch timed out")

// FetchError wraps navigation/network failures.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch %s: %v", e.URL, e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// RenderedPage is what one successful fetch produces.
type RenderedPage struct {
	URL              string
	Title            string
	HTML             string
	VisibleText      string
	OverlayDismissed bool // at least one known overlay was closed
}

type Fetcher struct {
	headless bool
	timeout  time.Duration

	// settle gives dynamic boards a moment to render after load.
	settle time.Duration
}

func New(headless bool, timeout time.Duration) *Fetcher {
	return &Fetcher{
		headless: headless,
		timeout:  timeout,
		settle:   3 * time.Second,
	}
}

// Fetch navigates to url and returns the rendered page. Overlay
// dismissal failures are non-fatal; they only degrade extraction
// quality.
func (f *Fetcher) Fetch(ctx context.Context, url string) (RenderedPage, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, f.timeout)
	defer cancelRun()

	page := RenderedPage{URL: url}
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(f.settle),
		chromedp.Title(&page.Title),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return RenderedPage{}, fmt.Errorf("%w after %s: %s", ErrFetchTimeout, f.timeout, url)
		}
		return RenderedPage{}, &FetchError{URL: url, Err: err}
	}

	page.OverlayDismissed = dismissOverlays(runCtx)

	err = chromedp.Run(runCtx,
		chromedp.OuterHTML("html", &page.HTML, chromedp.ByQuery),
		chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &page.VisibleText),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return RenderedPage{}, fmt.Errorf("%w after %s: %s", ErrFetchTimeout, f.timeout, url)
		}
		return RenderedPage{}, &FetchError{URL: url, Err: err}
	}
	return page, nil
}
