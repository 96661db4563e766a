package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaops/casa/pkg/domain"
)

func TestControlLightPassesBrightnessThrough(t *testing.T) {
	gw := &fakeGateway{serviceResult: []any{}}

	out, err := runTool(t, "control_light", gw, map[string]any{
		"entity_id":  "light.living_room",
		"action":     "turn_on",
		"brightness": float64(120),
	})
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "light", call.Domain)
	assert.Equal(t, "turn_on", call.Service)
	assert.Equal(t, map[string]any{
		"entity_id":  "light.living_room",
		"brightness": float64(120),
	}, call.Data)
	assert.Contains(t, out, "Light light.living_room turn_on result:")
}

func TestControlLightOmitsAbsentOptionals(t *testing.T) {
	gw := &fakeGateway{}

	_, err := runTool(t, "control_light", gw, map[string]any{
		"entity_id": "light.bedroom",
		"action":    "turn_off",
	})
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, map[string]any{"entity_id": "light.bedroom"}, gw.calls[0].Data)
}

func TestControlLightMissingRequired(t *testing.T) {
	gw := &fakeGateway{}
	_, err := runTool(t, "control_light", gw, map[string]any{"entity_id": "light.bedroom"})
	requireValidation(t, err, "entity_id and action are required")
	assert.Empty(t, gw.calls)
}

func TestControlLightInvalidAction(t *testing.T) {
	gw := &fakeGateway{}
	_, err := runTool(t, "control_light", gw, map[string]any{
		"entity_id": "light.bedroom",
		"action":    "blink",
	})
	requireValidation(t, err, "Invalid action 'blink'")
	assert.Empty(t, gw.calls)
}

func TestControlLightRangeConstraints(t *testing.T) {
	for name, args := range map[string]map[string]any{
		"brightness too high": {
			"entity_id":  "light.bedroom",
			"action":     "turn_on",
			"brightness": float64(300),
		},
		"brightness negative": {
			"entity_id":  "light.bedroom",
			"action":     "turn_on",
			"brightness": float64(-1),
		},
		"color_temp too low": {
			"entity_id":  "light.bedroom",
			"action":     "turn_on",
			"color_temp": float64(100),
		},
	} {
		t.Run(name, func(t *testing.T) {
			gw := &fakeGateway{}
			_, err := runTool(t, "control_light", gw, args)
			require.Error(t, err)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Empty(t, gw.calls)
		})
	}
}

func TestControlSwitchToggle(t *testing.T) {
	gw := &fakeGateway{serviceResult: []any{}}

	out, err := runTool(t, "control_switch", gw, map[string]any{
		"entity_id": "switch.kitchen",
		"action":    "toggle",
	})
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, "switch", gw.calls[0].Domain)
	assert.Equal(t, "toggle", gw.calls[0].Service)
	assert.Equal(t, map[string]any{"entity_id": "switch.kitchen"}, gw.calls[0].Data)
	assert.Contains(t, out, "Switch switch.kitchen toggle result:")
}

func TestControlSwitchInvalidAction(t *testing.T) {
	gw := &fakeGateway{}
	_, err := runTool(t, "control_switch", gw, map[string]any{
		"entity_id": "switch.kitchen",
		"action":    "dim",
	})
	requireValidation(t, err, "Invalid action 'dim'")
	assert.Empty(t, gw.calls)
}

func TestControlClimateSetModeRenamesParameter(t *testing.T) {
	gw := &fakeGateway{serviceResult: []any{}}

	out, err := runTool(t, "control_climate", gw, map[string]any{
		"entity_id": "climate.hall",
		"action":    "set_mode",
		"mode":      "heat",
	})
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	call := gw.calls[0]
	assert.Equal(t, "climate", call.Domain)
	assert.Equal(t, "set_hvac_mode", call.Service)
	assert.Equal(t, map[string]any{
		"entity_id": "climate.hall",
		"hvac_mode": "heat",
	}, call.Data)
	assert.NotContains(t, call.Data, "mode")
	assert.Contains(t, out, "Climate climate.hall set_mode result:")
}

func TestControlClimateSetTemperature(t *testing.T) {
	gw := &fakeGateway{serviceResult: []any{}}

	_, err := runTool(t, "control_climate", gw, map[string]any{
		"entity_id":   "climate.hall",
		"action":      "set_temperature",
		"temperature": float64(21.5),
	})
	require.NoError(t, err)

	require.Len(t, gw.calls, 1)
	assert.Equal(t, "set_temperature", gw.calls[0].Service)
	assert.Equal(t, map[string]any{
		"entity_id":   "climate.hall",
		"temperature": float64(21.5),
	}, gw.calls[0].Data)
}

func TestControlClimateActionConditionalRequirements(t *testing.T) {
	t.Run("temperature required for set_temperature", func(t *testing.T) {
		gw := &fakeGateway{}
		_, err := runTool(t, "control_climate", gw, map[string]any{
			"entity_id": "climate.hall",
			"action":    "set_temperature",
		})
		requireValidation(t, err, "temperature is required for set_temperature")
		assert.Empty(t, gw.calls)
	})

	t.Run("mode required for set_mode", func(t *testing.T) {
		gw := &fakeGateway{}
		_, err := runTool(t, "control_climate", gw, map[string]any{
			"entity_id": "climate.hall",
			"action":    "set_mode",
		})
		requireValidation(t, err, "mode is required for set_mode")
		assert.Empty(t, gw.calls)
	})
}

func TestControlClimateInvalidMode(t *testing.T) {
	gw := &fakeGateway{}
	_, err := runTool(t, "control_climate", gw, map[string]any{
		"entity_id": "climate.hall",
		"action":    "set_mode",
		"mode":      "tropical",
	})
	requireValidation(t, err, "Invalid mode 'tropical'")
	assert.Empty(t, gw.calls)
}
