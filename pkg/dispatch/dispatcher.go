// Package dispatch routes tool invocations through validation, the backend
// gateway and the response formatter. Every dispatch path terminates in a
// well-formed text response; no error or panic ever reaches the transport.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/casaops/casa/internal/logging"
	"github.com/casaops/casa/pkg/domain"
	"github.com/casaops/casa/pkg/render"
	"github.com/casaops/casa/pkg/tools"
)

// Recorder receives one observation per completed dispatch. Satisfied by
// internal/metrics.Recorder.
type Recorder interface {
	Observe(tool, outcome string, elapsed time.Duration)
}

// Dispatcher maps (name, arguments) pairs to catalogue handlers. The
// gateway is injected at construction; Dispatcher holds no other state.
type Dispatcher struct {
	registry *tools.Registry
	gateway  tools.Gateway
	logger   *slog.Logger
	recorder Recorder
	timeout  time.Duration
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatch logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithRecorder enables per-dispatch metrics.
func WithRecorder(r Recorder) Option {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

// WithCallTimeout bounds a single dispatch, including backend round-trips.
// Zero disables the deadline.
func WithCallTimeout(t time.Duration) Option {
	return func(d *Dispatcher) {
		d.timeout = t
	}
}

// New creates a Dispatcher over the given catalogue and gateway.
func New(registry *tools.Registry, gateway tools.Gateway, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		gateway:  gateway,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes one tool call and returns the rendered text. failed
// reports whether the text is an error response. Dispatch never panics and
// never returns an error value: faults of any kind become text.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) (text string, failed bool) {
	var (
		start   = time.Now()
		outcome = "ok"
		log     = d.logger.With("tool", name, "call_id", uuid.NewString())
	)
	defer func() {
		if r := recover(); r != nil {
			log.Error("tool dispatch panicked", "panic", r, "stack", string(debug.Stack()))
			outcome = "panic"
			text = render.Error("internal error during tool execution")
			failed = true
		}
		if d.recorder != nil {
			d.recorder.Observe(name, outcome, time.Since(start))
		}
	}()

	handler, ok := d.registry.Lookup(name)
	if !ok {
		err := &domain.UnknownToolError{Tool: name}
		log.Warn("unknown tool requested", "err", err)
		outcome = "unknown_tool"
		return render.Error(err.Error()), true
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	log.Info("dispatching tool call")
	out, err := handler.Handle(ctx, d.gateway, args)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			log.Warn("tool call rejected", "err", err)
			outcome = "invalid"
		} else {
			log.Error("tool call failed", "err", err)
			outcome = "error"
		}
		return render.Error(err.Error()), true
	}

	log.Debug("tool call completed", "elapsed", time.Since(start))
	return out, false
}
