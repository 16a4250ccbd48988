package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/WarBros01113/Real-SurvEase/internal/config"
)

// ErrBadStatus is returned when the target answered with a definitive
// client or server error.
var ErrBadStatus = errors.New("survey url returned an error status")

// Checker probes externally hosted survey URLs before they are accepted into
// the feed. The probe is best-effort: only a definitive 4xx/5xx from the
// target rejects a URL, because many survey hosts are flaky or rate-limited
// and a posting user should not be blocked by transient network trouble.
type Checker interface {
	// Check validates the URL syntactically and, if probing is enabled,
	// issues a HEAD request against it.
	Check(ctx context.Context, rawURL string) error
}

type httpChecker struct {
	client  *http.Client
	enabled bool
}

// New builds a Checker with a traced HTTP transport.
func New(cfg config.LinkCheckConfig) Checker {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpChecker{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   timeout,
		},
		enabled: cfg.Enabled,
	}
}

func (c *httpChecker) Check(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url host is required")
	}

	if !c.enabled {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		// Network-level failure: give the poster the benefit of the doubt.
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	return nil
}
