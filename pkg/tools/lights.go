package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/casaops/casa/pkg/domain"
	"github.com/casaops/casa/pkg/render"
)

type lightArgs struct {
	EntityID   string   `mapstructure:"entity_id"`
	Action     string   `mapstructure:"action"`
	Brightness *float64 `mapstructure:"brightness"`
	ColorTemp  *float64 `mapstructure:"color_temp"`
}

func (a lightArgs) validate() error {
	if a.EntityID == "" || a.Action == "" {
		return domain.Validationf("entity_id and action are required")
	}
	if err := serviceAction(a.Action, "turn_on", "turn_off", "toggle"); err != nil {
		return err
	}
	if a.Brightness != nil && (*a.Brightness < 0 || *a.Brightness > 255) {
		return domain.Validationf("brightness must be between 0 and 255")
	}
	if a.ColorTemp != nil && (*a.ColorTemp < 150 || *a.ColorTemp > 500) {
		return domain.Validationf("color_temp must be between 150 and 500")
	}
	return nil
}

func controlLight() *Handler {
	return &Handler{
		Definition: mcp.NewTool("control_light",
			mcp.WithDescription("Control a light device (turn on/off, adjust brightness, color temperature)"),
			mcp.WithString("entity_id",
				mcp.Required(),
				mcp.Description("Entity ID of the light"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("Action to perform"),
				mcp.Enum("turn_on", "turn_off", "toggle"),
			),
			mcp.WithNumber("brightness",
				mcp.Description("Brightness level (0-255), optional"),
				mcp.Min(0),
				mcp.Max(255),
			),
			mcp.WithNumber("color_temp",
				mcp.Description("Color temperature in mireds, optional"),
				mcp.Min(150),
				mcp.Max(500),
			),
		),
		Handle: func(ctx context.Context, gw Gateway, args map[string]any) (string, error) {
			var a lightArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			if err := a.validate(); err != nil {
				return "", err
			}

			data := map[string]any{"entity_id": a.EntityID}
			if a.Brightness != nil {
				data["brightness"] = *a.Brightness
			}
			if a.ColorTemp != nil {
				data["color_temp"] = *a.ColorTemp
			}

			result, err := gw.CallService(ctx, domain.ServiceCall{
				Domain:  "light",
				Service: a.Action,
				Data:    data,
			})
			if err != nil {
				return "", err
			}
			return render.ServiceResult("Light", a.EntityID, a.Action, result), nil
		},
	}
}
