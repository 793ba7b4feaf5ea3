package asset

import (
	"context"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/assetfetch/pkg/domain/interfaces"
)

const defaultMaxRedirects = 10

type client struct {
	httpClient *http.Client
}

// Option is a functional option for the asset client
type Option func(*config)

type config struct {
	transport    http.RoundTripper
	maxRedirects int
}

// WithTransport sets the HTTP transport used for downloads
func WithTransport(rt http.RoundTripper) Option {
	return func(c *config) {
		c.transport = rt
	}
}

// WithMaxRedirects sets how many redirects are followed before giving up
func WithMaxRedirects(n int) Option {
	return func(c *config) {
		c.maxRedirects = n
	}
}

// NewClient creates a new asset client that retrieves assets over HTTP(S)
func NewClient(opts ...Option) interfaces.AssetClient {
	cfg := &config{
		transport:    http.DefaultTransport,
		maxRedirects: defaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	maxRedirects := cfg.maxRedirects
	return &client{
		httpClient: &http.Client{
			Transport: cfg.transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return goerr.New("too many redirects",
						goerr.V("url", req.URL.String()),
						goerr.V("max", maxRedirects),
					)
				}
				return nil
			},
		},
	}
}

// Download fetches url and copies the response body into w
func (c *client) Download(ctx context.Context, url string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create download request", goerr.V("url", url))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to send download request", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, goerr.New("unexpected HTTP status "+resp.Status,
			goerr.V("url", url),
			goerr.V("status", resp.StatusCode),
		)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, goerr.Wrap(err, "failed to read response body",
			goerr.V("url", url),
			goerr.V("bytes", n),
		)
	}

	return n, nil
}
