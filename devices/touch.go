package devices

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mobile-next/mobiletouch/devices/evdev"
)

// ErrNoTouchDevice is returned when no candidate node qualifies as a
// multi-touch controller.
var ErrNoTouchDevice = errors.New("could not find touch device")

// ErrNotMultitouch is returned by Probe for a node without usable
// ABS_MT_POSITION_X/Y axes.
var ErrNotMultitouch = errors.New("device has no multi-touch position axes")

// ErrNoPressure is returned by Probe when pressure is required but missing.
var ErrNoPressure = errors.New("device has no multi-touch pressure axis")

// OpenError reports a touch controller node that exists but cannot be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("could not open touch controller %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Node is an opened input node able to describe its absolute axes.
type Node interface {
	io.WriteCloser
	AbsoluteAxes() (evdev.AxisSet, error)
	AbsInfo(code uint16) (evdev.AbsInfo, error)
}

// TouchDevice is an exclusively owned, opened touch controller. Close is
// idempotent so that every exit path may call it.
type TouchDevice struct {
	Path   string
	Motion MotionRange

	node      Node
	closeOnce sync.Once
	closeErr  error
}

// NewTouchDevice wraps an opened node whose ranges are already known.
func NewTouchDevice(path string, node Node, motion MotionRange) *TouchDevice {
	return &TouchDevice{
		Path:   path,
		Motion: motion,
		node:   node,
	}
}

func (d *TouchDevice) Write(p []byte) (int, error) {
	return d.node.Write(p)
}

// Close releases the node. Only the first call reaches the kernel.
func (d *TouchDevice) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.node.Close()
	})
	return d.closeErr
}

// Info describes the device for command output.
func (d *TouchDevice) Info() TouchDeviceInfo {
	return TouchDeviceInfo{
		Path:        d.Path,
		Motion:      d.Motion,
		HasPressure: d.Motion.HasPressure(),
	}
}

// TouchDeviceInfo is the JSON view of a qualified touch device.
type TouchDeviceInfo struct {
	Path        string      `json:"path"`
	Motion      MotionRange `json:"motion"`
	HasPressure bool        `json:"hasPressure"`
}
