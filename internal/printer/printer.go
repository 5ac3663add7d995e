// Package printer renders HTML to PDF in headless Chrome through go-rod.
package printer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// DefaultTimeout bounds one print, including browser start-up.
const DefaultTimeout = 60 * time.Second

// Chrome prints through a Chrome instance. With ControlURL empty a private
// headless browser is launched for each print and torn down afterwards;
// otherwise Chrome at ControlURL is reused and only the page is closed.
type Chrome struct {
	// Bin is the browser binary. Empty lets the launcher find or download one.
	Bin        string
	ControlURL string
	Timeout    time.Duration

	log *zap.Logger
}

// New returns a Chrome printer. A nil logger discards log output.
func New(bin, controlURL string, log *zap.Logger) *Chrome {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chrome{Bin: bin, ControlURL: controlURL, Timeout: DefaultTimeout, log: log}
}

// PrintPDF loads html into a blank page and prints it with backgrounds.
func (c *Chrome) PrintPDF(ctx context.Context, html []byte) ([]byte, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	controlURL := c.ControlURL
	owned := controlURL == ""
	if owned {
		l := launcher.New().Headless(true)
		if c.Bin != "" {
			l = l.Bin(c.Bin)
		}
		u, err := l.Context(ctx).Launch()
		if err != nil {
			return nil, fmt.Errorf("launching chrome: %w", err)
		}
		defer func() {
			l.Kill()
			l.Cleanup()
		}()
		controlURL = u
		c.log.Debug("chrome launched", zap.String("control_url", u))
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to chrome: %w", err)
	}
	if owned {
		defer browser.Close()
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for document: %w", err)
	}

	r, err := page.PDF(&proto.PagePrintToPDF{PrintBackground: true})
	if err != nil {
		return nil, fmt.Errorf("printing: %w", err)
	}
	pdf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading pdf stream: %w", err)
	}
	c.log.Debug("pdf printed", zap.Int("bytes", len(pdf)))
	return pdf, nil
}
