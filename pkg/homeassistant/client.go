// Package homeassistant implements the gateway to the Home Assistant REST
// API. It is the only component that talks to the network: every fault is
// converted into a domain.TransportError here and never escapes as a raw
// transport failure.
package homeassistant

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/casaops/casa/internal/logging"
	"github.com/casaops/casa/pkg/domain"
)

// Config carries the connection settings read once at startup.
type Config struct {
	// BaseURL is the Home Assistant root, e.g. "http://homeassistant.local:8123".
	BaseURL string
	// Token is the long-lived access token sent as a bearer credential.
	Token string
	// VerifySSL disables TLS certificate verification when false.
	VerifySSL bool
	// Timeout bounds each request round-trip. Zero means DefaultTimeout.
	Timeout time.Duration
	// ReadRetries is the number of additional attempts for idempotent reads.
	// Service calls are never retried.
	ReadRetries int
}

const (
	// DefaultTimeout bounds a single backend round-trip.
	DefaultTimeout = 30 * time.Second
	// DefaultReadRetries is applied when Config.ReadRetries is negative.
	DefaultReadRetries = 2

	retryBaseDelay = 250 * time.Millisecond
)

// Client talks to the Home Assistant REST API. The underlying transport
// pools connections across calls; Client itself holds no mutable state and
// is safe for reuse across dispatches.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
	retries int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a gateway client from cfg.
func New(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	retries := cfg.ReadRetries
	if retries < 0 {
		retries = DefaultReadRetries
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		logger:  logging.NewNop(),
		retries: retries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// States returns every entity state known to the backend.
//
// A backend response that is valid JSON but not a list is coerced into an
// empty slice and logged, mirroring the API's historical leniency for
// partial startups. Invalid JSON and HTTP failures surface as errors.
func (c *Client) States(ctx context.Context) ([]domain.State, error) {
	body, err := c.get(ctx, "states")
	if err != nil {
		return nil, err
	}

	// Decode the list shape first: a non-list body is coerced, but a list
	// whose items fail to decode is a genuine backend fault.
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		if json.Valid(body) {
			c.logger.Warn("unexpected shape for states response, treating as empty", "err", err)
			return []domain.State{}, nil
		}
		return nil, &domain.TransportError{Op: "GET /api/states", Err: err}
	}

	states := make([]domain.State, 0, len(items))
	for _, item := range items {
		var state domain.State
		if err := json.Unmarshal(item, &state); err != nil {
			return nil, &domain.TransportError{Op: "GET /api/states", Err: err}
		}
		states = append(states, state)
	}
	c.logger.Debug("fetched entity states", "count", len(states))
	return states, nil
}

// State returns the state of a single entity.
func (c *Client) State(ctx context.Context, entityID string) (*domain.State, error) {
	endpoint := "states/" + url.PathEscape(entityID)
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var state domain.State
	if err := json.Unmarshal(body, &state); err != nil {
		return nil, &domain.TransportError{Op: "GET /api/" + endpoint, Err: err}
	}
	return &state, nil
}

// CallService invokes a Home Assistant service and returns the decoded
// response body (typically the list of states changed by the call). The
// request is sent exactly once.
func (c *Client) CallService(ctx context.Context, call domain.ServiceCall) (any, error) {
	endpoint := fmt.Sprintf("services/%s/%s", url.PathEscape(call.Domain), url.PathEscape(call.Service))
	c.logger.Info("calling service",
		"service", call.Domain+"."+call.Service,
		"entity_id", call.Data["entity_id"],
	)

	body, err := c.post(ctx, endpoint, call.Data)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &domain.TransportError{Op: "POST /api/" + endpoint, Err: err}
	}
	return result, nil
}

// StatesByDomain returns the entity states whose ID carries the
// "<deviceType>." prefix.
func (c *Client) StatesByDomain(ctx context.Context, deviceType string) ([]domain.State, error) {
	states, err := c.States(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.State, 0, len(states))
	for _, s := range states {
		if strings.HasPrefix(s.EntityID, deviceType+".") {
			filtered = append(filtered, s)
		}
	}
	c.logger.Debug("filtered entity states", "device_type", deviceType, "count", len(filtered))
	return filtered, nil
}
