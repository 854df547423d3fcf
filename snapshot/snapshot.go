// Package snapshot captures raster thumbnails of standalone HTML
// documents using headless Chrome via go-rod. It satisfies the report
// package's Snapshotter interface, covering document figures that cannot
// encode a bitmap themselves.
//
// Rod downloads a managed Chromium on first run (~/.cache/rod/browser/).
// Set ROD_BROWSER_BIN to use a pre-installed browser; ROD_NO_SANDBOX is
// implied in CI and containerized environments.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Sentinel errors for browser-backed capture.
var (
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrCapture        = errors.New("screenshot capture failed")
)

// DefaultTimeout bounds page load and capture when none is given.
const DefaultTimeout = 30 * time.Second

// Capturer screenshots local HTML files with a lazily launched browser.
// It is not safe for concurrent use; report writes are single-threaded
// anyway, so one Capturer per writer is the expected setup.
type Capturer struct {
	browser *rod.Browser
	timeout time.Duration
}

// New creates a Capturer. A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Capturer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Capturer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (c *Capturer) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Snapshot opens the HTML file in headless Chrome and returns a PNG of
// the fully loaded page.
func (c *Capturer) Snapshot(htmlPath string) ([]byte, error) {
	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + abs})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.Timeout(c.timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	png, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}
	return png, nil
}

// Close releases browser resources.
func (c *Capturer) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}
