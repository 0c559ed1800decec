package devices

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mobile-next/mobiletouch/devices/evdev"
)

type fakeNode struct {
	axes    map[uint16]evdev.AbsInfo
	axesErr error
	infoErr map[uint16]error

	written bytes.Buffer
	closed  int
}

func (n *fakeNode) Write(p []byte) (int, error) {
	return n.written.Write(p)
}

func (n *fakeNode) Close() error {
	n.closed++
	return nil
}

func (n *fakeNode) AbsoluteAxes() (evdev.AxisSet, error) {
	if n.axesErr != nil {
		return nil, n.axesErr
	}
	set := make(evdev.AxisSet, 8)
	for code := range n.axes {
		set[code/8] |= 1 << (code % 8)
	}
	return set, nil
}

func (n *fakeNode) AbsInfo(code uint16) (evdev.AbsInfo, error) {
	if err := n.infoErr[code]; err != nil {
		return evdev.AbsInfo{}, err
	}
	return n.axes[code], nil
}

func touchscreen(maxX, maxY, maxPressure int32) *fakeNode {
	axes := map[uint16]evdev.AbsInfo{
		evdev.ABS_MT_POSITION_X: {Maximum: maxX},
		evdev.ABS_MT_POSITION_Y: {Maximum: maxY},
	}
	if maxPressure > 0 {
		axes[evdev.ABS_MT_PRESSURE] = evdev.AbsInfo{Maximum: maxPressure}
	}
	return &fakeNode{axes: axes}
}

// fakeInput maps candidate paths to nodes or open errors; paths absent from
// both behave like missing device files.
type fakeInput struct {
	nodes  map[string]*fakeNode
	errors map[string]error
	opened []string
}

func (f *fakeInput) open(path string) (Node, error) {
	f.opened = append(f.opened, path)
	if err, ok := f.errors[path]; ok {
		return nil, err
	}
	if node, ok := f.nodes[path]; ok {
		return node, nil
	}
	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

func (f *fakeInput) prober(candidates int) *Prober {
	return &Prober{
		Open:        f.open,
		PathPattern: "/dev/input/event%d",
		Candidates:  candidates,
	}
}

func eventPath(i int) string {
	return fmt.Sprintf("/dev/input/event%d", i)
}

var errPermission = &fs.PathError{Op: "open", Path: "node", Err: fs.ErrPermission}

var errIoctl = errors.New("inappropriate ioctl for device")
