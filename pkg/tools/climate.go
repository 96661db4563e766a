package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/casaops/casa/pkg/domain"
	"github.com/casaops/casa/pkg/render"
)

type climateArgs struct {
	EntityID    string   `mapstructure:"entity_id"`
	Action      string   `mapstructure:"action"`
	Temperature *float64 `mapstructure:"temperature"`
	Mode        string   `mapstructure:"mode"`
}

// validate applies the action-conditional requirements: temperature only
// exists for set_temperature, mode only for set_mode.
func (a climateArgs) validate() error {
	if a.EntityID == "" || a.Action == "" {
		return domain.Validationf("entity_id and action are required")
	}
	if err := serviceAction(a.Action, "set_temperature", "set_mode"); err != nil {
		return err
	}
	switch a.Action {
	case "set_temperature":
		if a.Temperature == nil {
			return domain.Validationf("temperature is required for set_temperature")
		}
	case "set_mode":
		if a.Mode == "" {
			return domain.Validationf("mode is required for set_mode")
		}
		switch a.Mode {
		case "heat", "cool", "auto", "off":
		default:
			return domain.Validationf("Invalid mode '%s'", a.Mode)
		}
	}
	return nil
}

func controlClimate() *Handler {
	return &Handler{
		Definition: mcp.NewTool("control_climate",
			mcp.WithDescription("Control climate devices (temperature, mode)"),
			mcp.WithString("entity_id",
				mcp.Required(),
				mcp.Description("Entity ID of the climate device"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("Action to perform"),
				mcp.Enum("set_temperature", "set_mode"),
			),
			mcp.WithNumber("temperature",
				mcp.Description("Target temperature (required for set_temperature)"),
			),
			mcp.WithString("mode",
				mcp.Description("Climate mode (required for set_mode)"),
				mcp.Enum("heat", "cool", "auto", "off"),
			),
		),
		Handle: func(ctx context.Context, gw Gateway, args map[string]any) (string, error) {
			var a climateArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			if err := a.validate(); err != nil {
				return "", err
			}

			var (
				service string
				data    = map[string]any{"entity_id": a.EntityID}
			)
			switch a.Action {
			case "set_temperature":
				service = "set_temperature"
				data["temperature"] = *a.Temperature
			case "set_mode":
				// The backend service parameter is hvac_mode, not mode.
				service = "set_hvac_mode"
				data["hvac_mode"] = a.Mode
			}

			result, err := gw.CallService(ctx, domain.ServiceCall{
				Domain:  "climate",
				Service: service,
				Data:    data,
			})
			if err != nil {
				return "", err
			}
			return render.ServiceResult("Climate", a.EntityID, a.Action, result), nil
		},
	}
}
