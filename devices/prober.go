package devices

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mobile-next/mobiletouch/devices/evdev"
	"github.com/mobile-next/mobiletouch/utils"
)

const (
	DefaultPathPattern = "/dev/input/event%d"
	DefaultCandidates  = 128
)

// OpenFunc opens the input node at path.
type OpenFunc func(path string) (Node, error)

// Prober locates the multi-touch controller among the input event nodes.
type Prober struct {
	Open        OpenFunc
	PathPattern string
	Candidates  int

	// RequirePressure rejects devices without an ABS_MT_PRESSURE axis.
	RequirePressure bool
}

// NewProber returns a prober over /dev/input/event0..127.
func NewProber() *Prober {
	return &Prober{
		Open:        openNode,
		PathPattern: DefaultPathPattern,
		Candidates:  DefaultCandidates,
	}
}

func openNode(path string) (Node, error) {
	node, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// Find returns the first candidate node that qualifies as a touch device.
// Per-candidate failures are skipped. If nothing qualifies and some node
// refused to open for lack of permission, that OpenError is returned instead
// of ErrNoTouchDevice.
func (p *Prober) Find() (*TouchDevice, error) {
	var permErr *OpenError

	for i := 0; i < p.Candidates; i++ {
		path := fmt.Sprintf(p.PathPattern, i)

		device, err := p.Probe(path)
		if err == nil {
			utils.Verbose("Found touch device %s (x=%v y=%v pressure=%v)", path, device.Motion.X, device.Motion.Y, device.Motion.Pressure)
			return device, nil
		}

		var openErr *OpenError
		if errors.As(err, &openErr) {
			if errors.Is(openErr.Err, fs.ErrNotExist) {
				continue
			}
			if permErr == nil && errors.Is(openErr.Err, fs.ErrPermission) {
				permErr = openErr
			}
		}

		utils.Verbose("Skipping %s: %v", path, err)
	}

	if permErr != nil {
		return nil, permErr
	}

	return nil, ErrNoTouchDevice
}

// Probe opens a single node and qualifies it. The node is closed again when
// it does not qualify.
func (p *Prober) Probe(path string) (*TouchDevice, error) {
	node, err := p.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	motion, err := p.motionRange(node)
	if err != nil {
		_ = node.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return NewTouchDevice(path, node, motion), nil
}

func (p *Prober) motionRange(node Node) (MotionRange, error) {
	axes, err := node.AbsoluteAxes()
	if err != nil {
		return MotionRange{}, err
	}

	motion := MotionRange{
		X:        readAxis(node, axes, evdev.ABS_MT_POSITION_X),
		Y:        readAxis(node, axes, evdev.ABS_MT_POSITION_Y),
		Pressure: readAxis(node, axes, evdev.ABS_MT_PRESSURE),
	}

	if !motion.X.Supported() || !motion.Y.Supported() {
		return MotionRange{}, ErrNotMultitouch
	}

	if p.RequirePressure && !motion.HasPressure() {
		return MotionRange{}, ErrNoPressure
	}

	return motion, nil
}

// readAxis returns the range of code, or a zero range when the axis is absent
// or its info cannot be read.
func readAxis(node Node, axes evdev.AxisSet, code uint16) AxisRange {
	if !axes.Has(code) {
		return AxisRange{}
	}

	info, err := node.AbsInfo(code)
	if err != nil {
		utils.Verbose("Ignoring %s: %v", evdev.AbsName(code), err)
		return AxisRange{}
	}

	return AxisRange{Minimum: info.Minimum, Maximum: info.Maximum}
}
