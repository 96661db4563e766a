package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/casaops/casa/pkg/domain"
)

// statusError is an HTTP-level failure. It distinguishes client mistakes
// (4xx, never retried) from server faults (5xx, retryable for reads).
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (e *statusError) retryable() bool {
	return e.Code >= 500
}

// get performs an idempotent read with bounded retry. Each attempt after
// the first waits retryBaseDelay << (attempt-1).
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	op := "GET /api/" + endpoint

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay << (attempt - 1)
			c.logger.Debug("retrying read", "endpoint", endpoint, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, &domain.TransportError{Op: op, Err: ctx.Err()}
			case <-time.After(delay):
			}
		}

		body, err := c.do(ctx, http.MethodGet, endpoint, nil)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if se, ok := err.(*statusError); ok && !se.retryable() {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}
	return nil, &domain.TransportError{Op: op, Err: lastErr}
}

// post performs a service invocation. At-most-once: no retry, ever.
func (c *Client) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	op := "POST /api/" + endpoint

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, &domain.TransportError{Op: op, Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	resp, err := c.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api/"+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("backend response", "method", method, "endpoint", endpoint, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{Code: resp.StatusCode, Body: truncate(string(data), 200)}
	}
	return data, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
