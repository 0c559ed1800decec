// Package evdev speaks the Linux input event protocol: event codes, the
// fixed-size input_event record and the capability ioctls used to inspect a
// /dev/input/eventN node.
package evdev

// Event types
const (
	EV_SYN = 0x00
	EV_KEY = 0x01
	EV_ABS = 0x03
)

// Synchronization codes
const (
	SYN_REPORT = 0x00
)

// Multi-touch absolute axis codes
const (
	ABS_MT_SLOT        = 0x2f
	ABS_MT_TOUCH_MAJOR = 0x30
	ABS_MT_POSITION_X  = 0x35
	ABS_MT_POSITION_Y  = 0x36
	ABS_MT_TRACKING_ID = 0x39
	ABS_MT_PRESSURE    = 0x3a
)

// TrackingIDNone releases the contact held by the current slot.
const TrackingIDNone = -1

var codeNames = map[uint16]string{
	ABS_MT_SLOT:        "ABS_MT_SLOT",
	ABS_MT_TOUCH_MAJOR: "ABS_MT_TOUCH_MAJOR",
	ABS_MT_POSITION_X:  "ABS_MT_POSITION_X",
	ABS_MT_POSITION_Y:  "ABS_MT_POSITION_Y",
	ABS_MT_TRACKING_ID: "ABS_MT_TRACKING_ID",
	ABS_MT_PRESSURE:    "ABS_MT_PRESSURE",
}

// AbsName returns the symbolic name of an absolute axis code, used in logs.
func AbsName(code uint16) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	return "ABS_UNKNOWN"
}
