// Package tools holds the fixed tool catalogue: for each tool an MCP schema
// definition, a typed argument decoder and the translation into gateway
// calls. The catalogue is built once at startup and immutable afterwards.
package tools

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/casaops/casa/pkg/domain"
)

// Gateway is the backend surface a tool handler may reach. The live
// implementation is pkg/homeassistant; tests substitute fakes.
type Gateway interface {
	States(ctx context.Context) ([]domain.State, error)
	State(ctx context.Context, entityID string) (*domain.State, error)
	CallService(ctx context.Context, call domain.ServiceCall) (any, error)
	StatesByDomain(ctx context.Context, deviceType string) ([]domain.State, error)
}

// HandleFunc validates the raw argument map, translates it into gateway
// calls and returns the rendered text. Validation failures return a
// *domain.ValidationError before any gateway call is made.
type HandleFunc func(ctx context.Context, gw Gateway, args map[string]any) (string, error)

// Handler bundles a tool's schema with its execution routine, so tools can
// be added or tested individually without touching a central dispatch.
type Handler struct {
	Definition mcp.Tool
	Handle     HandleFunc
}

// Registry is the ordered tool catalogue.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	handlers map[string]*Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]*Handler)}
}

// Register adds a handler. Re-registering a name overwrites the handler but
// keeps its original position in the catalogue order.
func (r *Registry) Register(h *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := h.Definition.Name
	if _, exists := r.handlers[name]; !exists {
		r.order = append(r.order, name)
	}
	r.handlers[name] = h
}

// Lookup returns the handler for name, if registered.
func (r *Registry) Lookup(name string) (*Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Definitions returns the tool schemas in registration order. The order is
// stable and visible to protocol clients.
func (r *Registry) Definitions() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.handlers[name].Definition)
	}
	return defs
}

// Default builds the full Home Assistant catalogue: the three read tools
// followed by the three control tools.
func Default() *Registry {
	r := NewRegistry()
	r.Register(getAllDevices())
	r.Register(getDevicesByType())
	r.Register(getDeviceState())
	r.Register(controlLight())
	r.Register(controlSwitch())
	r.Register(controlClimate())
	return r
}
