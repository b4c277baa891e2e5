// Package fetch - browser.go provides headless browser rendering for SPA job boards.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum fetched HTML length to consider a plain
// HTTP fetch successful. Shorter pages are likely JavaScript-rendered SPAs
// and should fall back to browser rendering.
const MinContentLength = 500

// ShouldUseBrowser returns true if the fetched content is too short,
// indicating the page is likely a JavaScript-rendered SPA.
func ShouldUseBrowser(html string) bool {
	return len(strings.TrimSpace(html)) < MinContentLength
}

// Rendered renders a job page in a headless browser and returns the HTML
// after dynamic content has settled. showMoreSelectors are the site's
// "expand description" controls; the first one present is clicked and the
// page gets a bounded window to render the expanded text. Requires
// Chrome/Chromium to be installed on the system.
func Rendered(ctx context.Context, url string, showMoreSelectors []string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Starting headless browser for: %s", url)
	}

	// Create browser context with timeout
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string

	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Let client-side rendering settle before touching anything.
		chromedp.Sleep(2*time.Second),
		// Dismiss common cookie banners - don't fail if not found.
		chromedp.ActionFunc(func(ctx context.Context) error {
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		// Expand the description so the full text is in the DOM.
		chromedp.ActionFunc(func(ctx context.Context) error {
			for _, sel := range showMoreSelectors {
				if err := chromedp.Click(sel, chromedp.NodeVisible).Do(ctx); err == nil {
					if verbose {
						log.Printf("[BROWSER] Clicked expand control: %s", sel)
					}
					break
				}
			}
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)

	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// RenderedSimple is a simplified version that uses the default timeout.
func RenderedSimple(ctx context.Context, url string, showMoreSelectors []string, verbose bool) (string, error) {
	return Rendered(ctx, url, showMoreSelectors, 30*time.Second, verbose)
}
