//go:build linux

package evdev

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func ioctl(fd, req uintptr, arg unsafe.Pointer) (int, error) {
	r, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return 0, errno
	}
	return int(r), nil
}
