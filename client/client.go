package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	v1 "featureboard/pkg/api/v1"
	"featureboard/pkg/logger"

	"go.uber.org/zap"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 200 * time.Millisecond
	maxBackoff        = 5 * time.Second
)

// Client talks to the /v1 API. Idempotent calls are retried with jittered
// backoff on 429, 503 and transport errors; creates are never retried.
type Client struct {
	addr       string
	httpClient *http.Client
	maxRetries int
	backoff    time.Duration
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithRetry sets the retry count and the first backoff step.
func WithRetry(maxRetries int, backoff time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.backoff = backoff
	}
}

func New(addr string, opts ...Option) *Client {
	c := &Client{
		addr:       addr,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListFeatures returns the table page for state, e.g. {"search": {"login"},
// "sort": {"name:asc"}, "f.status": {id}}.
func (c *Client) ListFeatures(ctx context.Context, state url.Values) (*v1.Table, error) {
	path := "/v1/features"
	if len(state) > 0 {
		path += "?" + state.Encode()
	}
	var out v1.Table
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Options(ctx context.Context) (*v1.Options, error) {
	var out v1.Options
	if err := c.do(ctx, http.MethodGet, "/v1/options", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetFeature(ctx context.Context, id string) (*v1.Feature, error) {
	var out v1.Feature
	if err := c.do(ctx, http.MethodGet, "/v1/features/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateFeature(ctx context.Context, in v1.CreateFeature) (*v1.Created, error) {
	var out v1.Created
	if err := c.do(ctx, http.MethodPost, "/v1/features", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateFeature(ctx context.Context, id string, in v1.EditFeature) error {
	return c.do(ctx, http.MethodPut, "/v1/features/"+url.PathEscape(id), in, nil)
}

func (c *Client) DeleteFeature(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/features/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = b
	}

	retries := c.maxRetries
	if method == http.MethodPost {
		retries = 0
	}

	backoff := c.backoff
	for attempt := 0; ; attempt++ {
		err := c.once(ctx, method, path, body, out)
		if err == nil || attempt >= retries || !retryable(err) {
			return err
		}

		wait := backoff
		if half := int64(backoff / 2); half > 0 {
			wait += time.Duration(rand.Int63n(half))
		}
		logger.Warn("featureboard request failed, retrying",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.addr+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &v1.Error{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *v1.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode == http.StatusServiceUnavailable
	}
	// transport error
	return true
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *v1.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
