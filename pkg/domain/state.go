package domain

import "strings"

// State is one Home Assistant entity state as reported by the backend.
// The entity ID has the form "<domain>.<object_id>" (e.g. "light.kitchen").
type State struct {
	EntityID   string         `json:"entity_id"`
	State      string         `json:"state"`
	Attributes map[string]any `json:"attributes"`
}

// Domain returns the category prefix of the entity ID ("light" for
// "light.kitchen"). Empty when the ID has no dot separator.
func (s State) Domain() string {
	d, _, ok := strings.Cut(s.EntityID, ".")
	if !ok {
		return ""
	}
	return d
}

// ServiceCall is a backend-side action request: a domain, a service name and
// a payload carrying at least the target entity_id. It is constructed per
// dispatch, sent once and discarded; service calls are never retried.
type ServiceCall struct {
	Domain  string         `json:"domain"`
	Service string         `json:"service"`
	Data    map[string]any `json:"data"`
}
