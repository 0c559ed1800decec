package gesture

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/devices/evdev"
)

type record struct {
	Type  uint16
	Code  uint16
	Value int32
}

func abs(code uint16, value int32) record {
	return record{Type: evdev.EV_ABS, Code: code, Value: value}
}

var syn = record{Type: evdev.EV_SYN, Code: evdev.SYN_REPORT}

var errWriteFailed = errors.New("no such device")

// recorder is a touch node that decodes every record written to it.
type recorder struct {
	records []record
	writes  int
	sizes   []int
	closed  int

	// failAt makes the write with this index fail; -1 disables.
	failAt int
	short  bool
}

func newRecorder() *recorder {
	return &recorder{failAt: -1}
}

func (r *recorder) Write(p []byte) (int, error) {
	index := r.writes
	r.writes++
	r.sizes = append(r.sizes, len(p))

	if index == r.failAt {
		if r.short {
			return len(p) / 2, nil
		}
		return 0, errWriteFailed
	}

	tail := p[len(p)-8:]
	r.records = append(r.records, record{
		Type:  binary.LittleEndian.Uint16(tail[0:2]),
		Code:  binary.LittleEndian.Uint16(tail[2:4]),
		Value: int32(binary.LittleEndian.Uint32(tail[4:8])),
	})
	return len(p), nil
}

func (r *recorder) Close() error {
	r.closed++
	return nil
}

func (r *recorder) AbsoluteAxes() (evdev.AxisSet, error) {
	return nil, nil
}

func (r *recorder) AbsInfo(code uint16) (evdev.AbsInfo, error) {
	return evdev.AbsInfo{}, nil
}

// batches splits the recorded stream at each SYN_REPORT.
func (r *recorder) batches() [][]record {
	var result [][]record
	var current []record
	for _, rec := range r.records {
		current = append(current, rec)
		if rec == syn {
			result = append(result, current)
			current = nil
		}
	}
	if len(current) > 0 {
		result = append(result, current)
	}
	return result
}

// testMotion is a 1000x2000 panel with pressure 0..255.
var testMotion = devices.MotionRange{
	X:        devices.AxisRange{Minimum: 0, Maximum: 1000},
	Y:        devices.AxisRange{Minimum: 0, Maximum: 2000},
	Pressure: devices.AxisRange{Minimum: 0, Maximum: 255},
}

// fakeClock advances only when slept on.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}
