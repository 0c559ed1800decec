package evdev

import (
	"fmt"
	"os"
	"unsafe"
)

// Node is an opened /dev/input/eventN character device.
type Node struct {
	file *os.File
}

// Open opens path read-write; writes inject events into the device.
func Open(path string) (*Node, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &Node{file: file}, nil
}

// Path returns the filesystem path the node was opened from.
func (n *Node) Path() string {
	return n.file.Name()
}

func (n *Node) Write(p []byte) (int, error) {
	return n.file.Write(p)
}

func (n *Node) Close() error {
	return n.file.Close()
}

// AbsoluteAxes returns the set of EV_ABS codes the device reports.
func (n *Node) AbsoluteAxes() (AxisSet, error) {
	bits, err := readBitmap(func(buf []byte) (int, error) {
		return ioctl(n.file.Fd(), eviocgbit(EV_ABS, uintptr(len(buf))), unsafe.Pointer(&buf[0]))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query absolute axes: %w", err)
	}
	return bits, nil
}

// AbsInfo returns the range information of the absolute axis code.
func (n *Node) AbsInfo(code uint16) (AbsInfo, error) {
	var info AbsInfo
	if _, err := ioctl(n.file.Fd(), eviocgabs(uintptr(code)), unsafe.Pointer(&info)); err != nil {
		return AbsInfo{}, fmt.Errorf("failed to query %s: %w", AbsName(code), err)
	}
	return info, nil
}
