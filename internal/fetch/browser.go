// Package fetch - browser.go renders posting pages that arrive as
// JavaScript shells. Workday and Ashby boards ship a nearly empty document
// and hydrate client-side, so the plain HTTP fetch sees almost no text.
package fetch

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the fewest characters of extracted text that still
// looks like a real posting. Anything shorter means the board probably
// hydrates client-side.
const MinContentLength = 500

// hydrationDelay gives client-rendered boards time to fill the document
// after the load event fires
const hydrationDelay = 3 * time.Second

// ShouldUseBrowser reports whether extracted text is too sparse to be a
// posting, signalling that a headless render should be tried
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser loads url in headless Chrome and returns the hydrated HTML.
// Requires a Chrome or Chromium binary on the host.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering %s", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(hydrationDelay),
		chromedp.ActionFunc(dismissConsentBanner),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}

	if verbose {
		log.Printf("[BROWSER] %s rendered to %d bytes", url, len(html))
	}
	return html, nil
}

// dismissConsentBanner clicks whatever accept button is visible so banner
// text stays out of the extraction. A missing banner is not an error.
func dismissConsentBanner(ctx context.Context) error {
	_ = chromedp.Click(
		`button[id*="accept"], button[class*="accept"], button[aria-label*="accept" i]`,
		chromedp.NodeVisible,
	).Do(ctx)
	return nil
}
