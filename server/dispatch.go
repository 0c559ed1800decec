package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mobile-next/mobiletouch/commands"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP and WebSocket transports
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"devices":         handleDevicesList,
		"device_info":     handleDeviceInfo,
		"io_pinch":        handleIoPinch,
		"io_swipe":        handleIoSwipe,
		"server.shutdown": handleServerShutdown,
	}
}

// Execute dispatches a method call using the registry
func Execute(ctx context.Context, method string, params json.RawMessage) (interface{}, error) {
	handler, exists := GetMethodRegistry()[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(ctx, params)
}

type DeviceInfoParams struct {
	Device string `json:"device,omitempty"`
}

type IoPinchParams struct {
	Device   string `json:"device,omitempty"`
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Angle    *int   `json:"angle"`
	Duration *int   `json:"duration"`
}

type IoSwipeParams struct {
	Device   string `json:"device,omitempty"`
	StartX   *int   `json:"startX"`
	StartY   *int   `json:"startY"`
	EndX     *int   `json:"endX"`
	EndY     *int   `json:"endY"`
	Duration *int   `json:"duration"`
}

func handleDevicesList(ctx context.Context, params json.RawMessage) (interface{}, error) {
	response := commands.DevicesCommand()
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleDeviceInfo(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var infoParams DeviceInfoParams
	if len(params) > 0 {
		if err := json.Unmarshal(params, &infoParams); err != nil {
			return nil, fmt.Errorf("invalid parameters: %v. Expected fields: device", err)
		}
	}

	return commands.InfoCommand(infoParams.Device)
}

func handleIoPinch(ctx context.Context, params json.RawMessage) (interface{}, error) {
	const fields = "from, to, angle, duration"
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: %s", fields)
	}

	var p IoPinchParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: %s", err, fields)
	}
	if p.From == nil || p.To == nil || p.Angle == nil || p.Duration == nil {
		return nil, fmt.Errorf("missing parameters. Expected fields: %s", fields)
	}

	response := commands.PinchCommand(ctx, commands.PinchRequest{
		Device:     p.Device,
		From:       *p.From,
		To:         *p.To,
		Angle:      *p.Angle,
		DurationMs: *p.Duration,
	})
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleIoSwipe(ctx context.Context, params json.RawMessage) (interface{}, error) {
	const fields = "startX, startY, endX, endY, duration"
	if len(params) == 0 {
		return nil, fmt.Errorf("'params' is required with fields: %s", fields)
	}

	var p IoSwipeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %v. Expected fields: %s", err, fields)
	}
	if p.StartX == nil || p.StartY == nil || p.EndX == nil || p.EndY == nil || p.Duration == nil {
		return nil, fmt.Errorf("missing parameters. Expected fields: %s", fields)
	}

	response := commands.SwipeCommand(ctx, commands.SwipeRequest{
		Device:     p.Device,
		StartX:     *p.StartX,
		StartY:     *p.StartY,
		EndX:       *p.EndX,
		EndY:       *p.EndY,
		DurationMs: *p.Duration,
	})
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleServerShutdown(ctx context.Context, params json.RawMessage) (interface{}, error) {
	requestShutdown()
	return okResponse, nil
}
