package evdev

import "unsafe"

const (
	iocRead = 2

	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30
)

// AbsInfo mirrors struct input_absinfo.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

var absInfoSize = uintptr(unsafe.Sizeof(AbsInfo{}))

func ioc(dir, typ, nr, size uintptr) uintptr {
	return dir<<iocDirShift | size<<iocSizeShift | typ<<iocTypeShift | nr<<iocNRShift
}

// eviocgbit reads the capability bitmap of event type ev into a buffer of
// length bytes.
func eviocgbit(ev, length uintptr) uintptr {
	return ioc(iocRead, 'E', 0x20+ev, length)
}

// eviocgabs reads the input_absinfo of axis abs.
func eviocgabs(abs uintptr) uintptr {
	return ioc(iocRead, 'E', 0x40+abs, absInfoSize)
}
