package content

import (
	"context"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

// HTTPFetcher fetches content over HTTP from a static file host, the same
// layout as a content directory served as-is.
type HTTPFetcher struct {
	BaseURL string
	Client  *fasthttp.Client
	Timeout time.Duration
}

// NewHTTPFetcher returns a fetcher for baseURL with its own client.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client: &fasthttp.Client{
			Name:                "flashlingo",
			MaxIdleConnDuration: 30 * time.Second,
		},
		Timeout: timeout,
	}
}

// Fetch GETs BaseURL/path. The deadline is the earlier of the context deadline
// and the fetcher timeout.
func (h *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url := h.BaseURL + "/" + strings.TrimPrefix(path, "/")

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if err := h.Client.DoDeadline(req, resp, h.deadline(ctx)); err != nil {
		return nil, err
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return nil, &StatusError{URL: url, Code: code}
	}

	// The response body is reused once resp is released.
	return append([]byte(nil), resp.Body()...), nil
}

func (h *HTTPFetcher) deadline(ctx context.Context) time.Time {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().HTTPTimeout
	}
	d := time.Now().Add(timeout)
	if cd, ok := ctx.Deadline(); ok && cd.Before(d) {
		return cd
	}
	return d
}

func (h *HTTPFetcher) String() string { return "http:" + h.BaseURL }
