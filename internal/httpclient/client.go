package httpclient

import (
	"bytes"
	"crypto/tls"
	"io"
	"net/http"
	"time"

	"github.com/AleksaZatezalo/graphQL-DOS-Test/internal/logger"
)

// Client wraps http.Client with the behaviors the probe needs: a fixed
// User-Agent, an optional retry budget and an inter-request delay.
type Client struct {
	httpClient   *http.Client
	logger       *logger.Logger
	userAgent    string
	maxRetries   int
	requestDelay time.Duration
}

// ClientOptions holds configuration parameters for initializing the Client.
type ClientOptions struct {
	Timeout            time.Duration // per-request timeout
	InsecureSkipVerify bool          // skip TLS certificate verification
	UserAgent          string        // custom User-Agent string
	MaxRetries         int           // retries for transient failures; 0 means a single attempt
	RequestDelay       time.Duration // delay before each retry
}

// NewClient creates an HTTP client with the specified options.
func NewClient(log *logger.Logger, opts ClientOptions) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = "gqldostest/1.0"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		logger:       log,
		userAgent:    opts.UserAgent,
		maxRetries:   opts.MaxRetries,
		requestDelay: opts.RequestDelay,
	}
}

// Do performs an HTTP request, setting the User-Agent and retrying transient
// failures (transport errors, 429, 5xx) up to the configured budget. With the
// default budget of zero it makes exactly one attempt.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Trace("Sending request: %s %s", req.Method, req.URL.String())

	// Buffer the body once so each attempt can replay it.
	var bodyBytes []byte
	if req.Body != nil {
		bodyBytes, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}

	var resp *http.Response
	var err error

	for attempt := 0; ; attempt++ {
		reqClone := req.Clone(req.Context())
		if bodyBytes != nil {
			reqClone.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}

		resp, err = c.httpClient.Do(reqClone)

		if err == nil {
			retryable := resp.StatusCode == http.StatusTooManyRequests ||
				(resp.StatusCode >= 500 && resp.StatusCode <= 599)
			if !retryable {
				return resp, nil
			}
		}

		if attempt >= c.maxRetries {
			// Out of budget; hand back whatever the last attempt produced.
			return resp, err
		}

		if resp != nil {
			if resp.StatusCode == http.StatusTooManyRequests {
				c.logger.Warn("Rate limit detected (429 Too Many Requests). Backing off before retrying...")
				resp.Body.Close()
				time.Sleep(5 * time.Second)
				continue
			}
			resp.Body.Close()
		}
		time.Sleep(c.requestDelay)
	}
}

// GetClient returns the underlying standard http.Client instance.
func (c *Client) GetClient() *http.Client {
	return c.httpClient
}
