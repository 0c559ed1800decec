//go:build !linux

package evdev

import (
	"errors"
	"unsafe"
)

func ioctl(fd, req uintptr, arg unsafe.Pointer) (int, error) {
	return 0, errors.ErrUnsupported
}
