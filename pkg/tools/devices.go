package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/casaops/casa/pkg/domain"
	"github.com/casaops/casa/pkg/render"
)

func getAllDevices() *Handler {
	return &Handler{
		Definition: mcp.NewTool("get_all_devices",
			mcp.WithDescription("Get a list of all devices and their current states"),
		),
		Handle: func(ctx context.Context, gw Gateway, args map[string]any) (string, error) {
			states, err := gw.States(ctx)
			if err != nil {
				return "", err
			}
			return render.DeviceList(states, "devices"), nil
		},
	}
}

type devicesByTypeArgs struct {
	DeviceType string `mapstructure:"device_type"`
}

func getDevicesByType() *Handler {
	return &Handler{
		Definition: mcp.NewTool("get_devices_by_type",
			mcp.WithDescription("Get devices of a specific type (light, switch, climate, etc.)"),
			mcp.WithString("device_type",
				mcp.Required(),
				mcp.Description("Type of device (e.g. 'light', 'switch', 'climate')"),
			),
		),
		Handle: func(ctx context.Context, gw Gateway, args map[string]any) (string, error) {
			var a devicesByTypeArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			if a.DeviceType == "" {
				return "", domain.Validationf("device_type is required")
			}

			states, err := gw.StatesByDomain(ctx, a.DeviceType)
			if err != nil {
				return "", err
			}
			return render.DeviceList(states, fmt.Sprintf("%s devices", a.DeviceType)), nil
		},
	}
}

type deviceStateArgs struct {
	EntityID string `mapstructure:"entity_id"`
}

func getDeviceState() *Handler {
	return &Handler{
		Definition: mcp.NewTool("get_device_state",
			mcp.WithDescription("Get the current state of a specific device"),
			mcp.WithString("entity_id",
				mcp.Required(),
				mcp.Description("Entity ID of the device (e.g. 'light.living_room')"),
			),
		),
		Handle: func(ctx context.Context, gw Gateway, args map[string]any) (string, error) {
			var a deviceStateArgs
			if err := decodeArgs(args, &a); err != nil {
				return "", err
			}
			if a.EntityID == "" {
				return "", domain.Validationf("entity_id is required")
			}

			state, err := gw.State(ctx, a.EntityID)
			if err != nil {
				return "", err
			}
			return render.DeviceState(state), nil
		},
	}
}
