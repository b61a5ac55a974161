// Package export captures the dashboard views with headless Chrome and
// assembles them into a single landscape PDF snapshot.
package export

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"prioboard/internal/board"
)

// Filename is the fixed name of the exported snapshot.
const Filename = "SSE_2026_Priorities_Q1-Q2.pdf"

// ErrChromiumMissing indicates no Chromium binary is available, checked
// before any capture starts.
var ErrChromiumMissing = errors.New("export chromium missing")

// Viewport the captures render at. Landscape to match the PDF pages.
const (
	viewportWidth  = 1400
	viewportHeight = 900
)

// Exporter drives headless Chrome against the server's own dashboard.
type Exporter struct {
	baseURL     string
	settleDelay time.Duration
}

// New returns an exporter that navigates to baseURL for each view.
// settleDelay is the wait after page ready before capturing.
func New(baseURL string, settleDelay time.Duration) *Exporter {
	return &Exporter{baseURL: baseURL, settleDelay: settleDelay}
}

// Export captures every timeline-bearing view and returns the assembled PDF.
// Any capture failure aborts the whole export; no partial document is
// produced.
func (e *Exporter) Export(ctx context.Context) ([]byte, error) {
	if _, err := exec.LookPath("chromium-browser"); err != nil {
		if _, fallbackErr := exec.LookPath("chromium"); fallbackErr != nil {
			return nil, fmt.Errorf("%w: chromium not installed", ErrChromiumMissing)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	tabs := board.ExportTabs()
	captures := make([][]byte, 0, len(tabs))
	for _, tab := range tabs {
		shot, err := e.captureTab(taskCtx, tab)
		if err != nil {
			return nil, fmt.Errorf("capture %s: %w", tab, err)
		}
		captures = append(captures, shot)
	}

	pdf, err := assemblePDF(captures)
	if err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return pdf, nil
}

// captureTab navigates to one view in export mode and screenshots it. The
// export=1 flag hides the header controls and tab bar for a clean page.
func (e *Exporter) captureTab(ctx context.Context, tab string) ([]byte, error) {
	url := fmt.Sprintf("%s/?tab=%s&export=1", e.baseURL, tab)

	var shot []byte
	err := chromedp.Run(ctx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(e.settleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			shot, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return shot, nil
}
