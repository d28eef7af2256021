// Package transport provides the HTTP transport used to reach exchange REST APIs.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"okxrest/pkg/core"
)

// Client wraps a resty HTTP client and satisfies core.Transport.
// It never retries and passes headers and body bytes through unchanged.
type Client struct {
	client *resty.Client
	logger zerolog.Logger
	config *core.Config
	mu     sync.RWMutex
	closed bool
}

var _ core.Transport = (*Client)(nil)

// NewClient creates an HTTP transport with the configured timeout and retries disabled.
func NewClient(config *core.Config, logger zerolog.Logger) *Client {
	client := resty.New()
	client.SetTimeout(config.Timeout)
	client.SetRetryCount(0)

	client.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request")
		return nil
	})

	client.AddResponseMiddleware(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Int("size", len(resp.Bytes())).
			Msg("http response")
		return nil
	})

	return &Client{
		client: client,
		logger: logger,
		config: config,
	}
}

// Do executes the request and returns the status and body of whatever response arrives.
// Only failures that produce no response are returned as errors.
func (c *Client) Do(ctx context.Context, req *core.HTTPRequest) (*core.RawResponse, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, core.ErrClientClosed
	}

	r := c.client.R().SetContext(ctx)
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, c.transportError(req.Method, err)
	}

	return &core.RawResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
	}, nil
}

func (c *Client) transportError(method string, err error) error {
	errType, code := core.ErrorTypeNetwork, core.ErrCodeNetwork
	if isTimeout(err) {
		errType, code = core.ErrorTypeTimeout, core.ErrCodeTimeout
	}
	e := core.NewExchangeError(c.config.Exchange, errType, 0, fmt.Sprintf("%s request", method)).
		WithCode(code).
		WithCause(err)
	e.Method = method
	return e
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Close releases idle connections. Calls after Close fail with core.ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.client.Close()
}
