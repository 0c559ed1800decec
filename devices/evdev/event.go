package evdev

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"github.com/lunixbochs/struc"
)

// Event mirrors the kernel's struct input_event. The timeval member makes the
// record 24 bytes on 64-bit platforms and 16 bytes on 32-bit ones.
type Event struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// EventSize is the size in bytes of one encoded Event on this platform.
var EventSize = int(unsafe.Sizeof(Event{}))

var packOptions = &struc.Options{Order: binary.LittleEndian}

// NewEvent builds an event stamped with t.
func NewEvent(t time.Time, typ, code uint16, value int32) Event {
	return Event{
		Time:  syscall.NsecToTimeval(t.UnixNano()),
		Type:  typ,
		Code:  code,
		Value: value,
	}
}

// Bytes packs the event into its wire representation.
func (e *Event) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(EventSize)
	if err := struc.PackWithOptions(&buf, e, packOptions); err != nil {
		return nil, fmt.Errorf("failed to pack input event: %w", err)
	}
	return buf.Bytes(), nil
}

func (e Event) String() string {
	switch e.Type {
	case EV_SYN:
		return "SYN_REPORT"
	case EV_ABS:
		return fmt.Sprintf("%s %d", AbsName(e.Code), e.Value)
	default:
		return fmt.Sprintf("type=%d code=%d value=%d", e.Type, e.Code, e.Value)
	}
}
