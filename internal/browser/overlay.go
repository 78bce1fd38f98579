package browser

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// Known close buttons for the overlays that most often sit on top of
// job descriptions: cookie banners, chat widgets, signup nags.
var overlayCloseSelectors = []string{
	`#onetrust-accept-btn-handler`,
	`button[aria-label="Accept cookies"]`,
	`button[aria-label="Close"]`,
	`button[aria-label="Dismiss"]`,
	`.cookie-banner button`,
	`.cc-dismiss`,
	`[class*="chat"] button[class*="close"]`,
	`[id*="chat-widget"] [class*="close"]`,
	`.modal-close`,
	`button.close`,
}

const overlayClickTimeout = 1500 * time.Millisecond

// dismissOverlays tries each known close selector once with a short
// timeout. Misses are expected on most pages; nothing here is fatal.
func dismissOverlays(ctx context.Context) bool {
	dismissed := false
	for _, sel := range overlayCloseSelectors {
		if ctx.Err() != nil {
			return dismissed
		}
		clickCtx, cancel := context.WithTimeout(ctx, overlayClickTimeout)
		err := chromedp.Run(clickCtx,
			chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible),
		)
		cancel()
		if err == nil {
			dismissed = true
		}
	}
	return dismissed
}
