package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/gesture"
)

// PinchRequest represents the parameters for a pinch command
type PinchRequest struct {
	Device     string `json:"device,omitempty"`
	From       int    `json:"from"`
	To         int    `json:"to"`
	Angle      int    `json:"angle"`
	DurationMs int    `json:"duration"`
}

// SwipeRequest represents the parameters for a swipe command
type SwipeRequest struct {
	Device     string `json:"device,omitempty"`
	StartX     int    `json:"startX"`
	StartY     int    `json:"startY"`
	EndX       int    `json:"endX"`
	EndY       int    `json:"endY"`
	DurationMs int    `json:"duration"`
}

func checkPercent(name string, value int) error {
	if value < 0 || value > 100 {
		return NewUsageError("%s must be between 0 and 100, got %d", name, value)
	}
	return nil
}

func checkDuration(value int) error {
	if value < 0 {
		return NewUsageError("duration must not be negative, got %d", value)
	}
	return nil
}

func (r PinchRequest) Validate() error {
	if err := checkPercent("from", r.From); err != nil {
		return err
	}
	if err := checkPercent("to", r.To); err != nil {
		return err
	}
	if r.Angle < 0 || r.Angle > 90 {
		return NewUsageError("angle must be between 0 and 90 degrees, got %d", r.Angle)
	}
	if err := checkDuration(r.DurationMs); err != nil {
		return err
	}
	if r.From == r.To {
		return NewUsageError("from and to are the same")
	}
	return nil
}

func (r SwipeRequest) Validate() error {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"startX", r.StartX},
		{"startY", r.StartY},
		{"endX", r.EndX},
		{"endY", r.EndY},
	} {
		if err := checkPercent(c.name, c.value); err != nil {
			return err
		}
	}
	if err := checkDuration(r.DurationMs); err != nil {
		return err
	}
	if r.StartX == r.EndX && r.StartY == r.EndY {
		return NewUsageError("start and end are the same")
	}
	return nil
}

// PinchCommand pinches two contacts about the center of the touch device
func PinchCommand(ctx context.Context, req PinchRequest) *CommandResponse {
	if err := req.Validate(); err != nil {
		return NewErrorResponse(err)
	}

	return runGesture(ctx, req.Device, time.Duration(req.DurationMs)*time.Millisecond, func(motion devices.MotionRange) (gesture.Planner, error) {
		return gesture.NewPinch(motion, req.From, req.To, req.Angle)
	})
}

// SwipeCommand drags a single contact across the touch device
func SwipeCommand(ctx context.Context, req SwipeRequest) *CommandResponse {
	if err := req.Validate(); err != nil {
		return NewErrorResponse(err)
	}

	return runGesture(ctx, req.Device, time.Duration(req.DurationMs)*time.Millisecond, func(motion devices.MotionRange) (gesture.Planner, error) {
		return gesture.NewSwipe(motion, req.StartX, req.StartY, req.EndX, req.EndY)
	})
}

func runGesture(ctx context.Context, path string, duration time.Duration, plan func(devices.MotionRange) (gesture.Planner, error)) *CommandResponse {
	gestureMu.Lock()
	defer gestureMu.Unlock()

	device, release, err := openTouchDevice(path)
	if err != nil {
		return NewErrorResponse(err)
	}
	defer release()

	planner, err := plan(device.Motion)
	if err != nil {
		return NewErrorResponse(err)
	}

	runner := gesture.NewRunner(settings.Gesture.SampleRate)
	result, err := runner.Run(ctx, device, planner, duration)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("%s on %s: %w", planner.Name(), device.Path, err))
	}

	return NewSuccessResponse(result)
}
