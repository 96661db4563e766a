// Package render normalizes gateway results into the single text block
// returned over the protocol.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/casaops/casa/pkg/domain"
)

// Device is the projection of an entity state exposed to callers: only the
// identifier, the state value and the open attribute map survive.
type Device struct {
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

func project(s domain.State) Device {
	attrs := s.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}
	return Device{EntityID: s.EntityID, State: s.State, Attributes: attrs}
}

// DeviceList renders a list result with a count prefix, e.g.
// "Found 3 light devices:" followed by the pretty-printed projection.
func DeviceList(states []domain.State, label string) string {
	devices := make([]Device, 0, len(states))
	for _, s := range states {
		devices = append(devices, project(s))
	}
	return fmt.Sprintf("Found %d %s:\n%s", len(devices), label, pretty(devices))
}

// DeviceState renders a single entity state.
func DeviceState(s *domain.State) string {
	return fmt.Sprintf("Device %s state:\n%s", s.EntityID, pretty(project(*s)))
}

// ServiceResult renders the outcome of a service invocation. subject is the
// capitalized device class ("Light", "Switch", "Climate").
func ServiceResult(subject, entityID, action string, result any) string {
	return fmt.Sprintf("%s %s %s result:\n%s", subject, entityID, action, pretty(result))
}

// Error renders an error descriptor. Every failed dispatch ends here; the
// output is always a plain text block, never a protocol-level fault.
func Error(msg string) string {
	return "Error: " + msg
}

func pretty(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
