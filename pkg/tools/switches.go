package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/casaops/casa/pkg/domain"
	"github.com/casaops/casa/pkg/render"
)

type switchArgs struct {
	EntityID string `mapstructure:"entity_id"`
	Action   string `mapstructure:"action"`
}

func controlSwitch() *Handler {
	return &Handler{
		Definition: mcp.NewTool("control_switch",
			mcp.WithDescription("Control a switch device (turn on/off/toggle)"),
			mcp.WithString("entity_id",
				mcp.Required(),
				mcp.Description("Entity ID of the switch"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("Action to perform"),
				mcp.Enum("turn_on", "turn_off", "toggle"),
			),
		),
		Handle: func(ctx context.Context, gw Gateway, args map[string]any) (string, error) {
			var a switchArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			if a.EntityID == "" || a.Action == "" {
				return "", domain.Validationf("entity_id and action are required")
			}
			if err := serviceAction(a.Action, "turn_on", "turn_off", "toggle"); err != nil {
				return "", err
			}

			result, err := gw.CallService(ctx, domain.ServiceCall{
				Domain:  "switch",
				Service: a.Action,
				Data:    map[string]any{"entity_id": a.EntityID},
			})
			if err != nil {
				return "", err
			}
			return render.ServiceResult("Switch", a.EntityID, a.Action, result), nil
		},
	}
}
