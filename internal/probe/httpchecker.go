package probe

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/hamed0406/resourcemonitor/internal/config"
	"github.com/hamed0406/resourcemonitor/internal/domain"
)

// HTTPChecker issues one GET per resource and compares the status code.
// There are no retries and no timeout beyond the client's own.
type HTTPChecker struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPChecker falls back to config.DefaultUserAgent when userAgent is empty.
func NewHTTPChecker(userAgent string) *HTTPChecker {
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &HTTPChecker{
		Client:    &http.Client{},
		UserAgent: userAgent,
	}
}

func (h *HTTPChecker) Check(ctx context.Context, spec domain.ResourceSpec) domain.Outcome {
	out := domain.Outcome{Spec: spec}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.URL, nil)
	if err != nil {
		out.Failure = &domain.ResourceCheckFailure{URL: spec.URL, ExpectedCode: spec.ExpectedCode, Cause: err}
		out.CheckedAt = start.UTC()
		return out
	}
	ua := h.UserAgent
	if ua == "" {
		ua = config.DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := h.Client.Do(req)
	out.LatencyMS = time.Since(start).Seconds() * 1000 // ms
	out.CheckedAt = start.UTC()
	if err != nil {
		out.Failure = &domain.ResourceCheckFailure{URL: spec.URL, ExpectedCode: spec.ExpectedCode, Cause: err}
		return out
	}
	defer resp.Body.Close()
	_, _ = io.CopyN(io.Discard, resp.Body, 64<<10) // let the connection be reused

	out.StatusCode = resp.StatusCode
	if resp.StatusCode != spec.ExpectedCode {
		out.Failure = &domain.ResourceCheckFailure{
			URL:          spec.URL,
			StatusCode:   resp.StatusCode,
			ExpectedCode: spec.ExpectedCode,
		}
	}
	return out
}
