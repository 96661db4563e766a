package tools

import (
	"github.com/mitchellh/mapstructure"

	"github.com/casaops/casa/pkg/domain"
)

// decodeArgs maps the loose protocol argument bag into a typed per-tool
// struct. It fails closed: unknown keys and type mismatches are rejected as
// validation errors rather than silently dropped.
func decodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return domain.Validationf("invalid arguments: %v", err)
	}
	return nil
}

// serviceAction checks an action value against the tool's enumerated set.
func serviceAction(action string, allowed ...string) error {
	if action == "" {
		return nil // requiredness is reported separately, with the field name
	}
	for _, a := range allowed {
		if action == a {
			return nil
		}
	}
	return domain.Validationf("Invalid action '%s'", action)
}
