package utils

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/chromedp/chromedp"
	"golang.org/x/time/rate"

	"github.com/Tamil182006/AI-Stylist-manoj/internal/types"
)

// BrowserClient fetches fully rendered pages with a headless browser.
// Every fetch runs in a fresh isolated browser session so no cookies or
// session state leak between calls.
type BrowserClient struct {
	config  *types.Config
	logger  types.Logger
	limiter *rate.Limiter
}

// NewBrowserClient creates a new browser client.
func NewBrowserClient(config *types.Config, logger types.Logger) *BrowserClient {
	// Suppress chromedp debug logging
	log.SetOutput(io.Discard)

	return &BrowserClient{
		config:  config,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.RequestBurst),
	}
}

// FetchRenderedPage navigates to pageURL in an isolated headless browser and
// returns the rendered HTML. Navigation is bounded by NavigationTimeout and a
// failure there wraps types.ErrNavigationFailed. After navigation the client
// waits up to SelectorTimeout for waitSelector; a marker timeout is not fatal
// since sites sometimes render without the expected marker, so the HTML
// present at that point is returned anyway. The browser process is torn down
// on every exit path.
func (b *BrowserClient) FetchRenderedPage(ctx context.Context, pageURL, waitSelector string) (string, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.UserAgent(b.config.UserAgent),
		chromedp.WindowSize(b.config.ViewportWidth, b.config.ViewportHeight),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Navigate with the longer bound
	navCtx, cancelNav := context.WithTimeout(browserCtx, b.config.NavigationTimeout)
	defer cancelNav()

	if err := chromedp.Run(navCtx, chromedp.Navigate(pageURL)); err != nil {
		return "", fmt.Errorf("%w: %s: %v", types.ErrNavigationFailed, pageURL, err)
	}

	// Wait for the content marker with the shorter bound
	if waitSelector != "" {
		waitCtx, cancelWait := context.WithTimeout(browserCtx, b.config.SelectorTimeout)
		if err := chromedp.Run(waitCtx, chromedp.WaitReady(waitSelector, chromedp.ByQuery)); err != nil {
			b.logger.Warnf("%v: %q on %s, extracting anyway", types.ErrMarkerNotFound, waitSelector, pageURL)
		}
		cancelWait()
	}

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return "", fmt.Errorf("failed to capture rendered page: %w", err)
	}

	b.logger.Debugf("Fetched rendered page %s (%d bytes)", pageURL, len(html))
	return html, nil
}
