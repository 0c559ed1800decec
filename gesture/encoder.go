package gesture

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/devices/evdev"
	"github.com/mobile-next/mobiletouch/types"
)

// ErrEncoderClosed is returned for batches submitted after the encoder closed
// its sink.
var ErrEncoderClosed = errors.New("touch device already closed")

// WriteError reports an event that could not be written in full. The sink has
// been closed by the time it is returned.
type WriteError struct {
	Event evdev.Event
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write event failed (%s): %v", e.Event, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type slotState struct {
	x, y int32
}

// Encoder turns contact positions into multi-touch protocol type B batches.
// It remembers what each slot last reported so moves only carry the axes
// that changed.
type Encoder struct {
	sink     io.WriteCloser
	contacts int
	motion   devices.MotionRange
	now      func() time.Time

	slots   []slotState
	current int
	closed  bool

	events  int
	batches int
}

func NewEncoder(sink io.WriteCloser, contacts int, motion devices.MotionRange) *Encoder {
	return &Encoder{
		sink:     sink,
		contacts: contacts,
		motion:   motion,
		now:      time.Now,
		slots:    make([]slotState, contacts),
		current:  -1,
	}
}

// Events is the number of event records written so far.
func (e *Encoder) Events() int {
	return e.events
}

// Batches is the number of SYN_REPORT-terminated batches written so far.
func (e *Encoder) Batches() int {
	return e.batches
}

// Down puts every contact on the surface.
func (e *Encoder) Down(points []types.TouchPoint) error {
	if err := e.check(points); err != nil {
		return err
	}

	batch := make([]evdev.Event, 0, e.contacts*5+1)
	for i, p := range points {
		batch = append(batch,
			e.abs(evdev.ABS_MT_SLOT, int32(i)),
			e.abs(evdev.ABS_MT_TRACKING_ID, int32(i)),
		)
		if e.motion.HasPressure() {
			batch = append(batch, e.abs(evdev.ABS_MT_PRESSURE, e.motion.PressureMax()))
		}
		batch = append(batch,
			e.abs(evdev.ABS_MT_POSITION_X, p.X),
			e.abs(evdev.ABS_MT_POSITION_Y, p.Y),
		)
		e.slots[i] = slotState{x: p.X, y: p.Y}
		e.current = i
	}

	return e.flush(batch)
}

// Move reports new positions. Axes equal to the last reported value are
// omitted, and a batch with nothing to report is not written at all.
func (e *Encoder) Move(points []types.TouchPoint) error {
	if err := e.check(points); err != nil {
		return err
	}

	var batch []evdev.Event
	for i, p := range points {
		slot := &e.slots[i]
		if p.X == slot.x && p.Y == slot.y {
			continue
		}

		if e.current != i {
			batch = append(batch, e.abs(evdev.ABS_MT_SLOT, int32(i)))
			e.current = i
		}
		if p.X != slot.x {
			batch = append(batch, e.abs(evdev.ABS_MT_POSITION_X, p.X))
			slot.x = p.X
		}
		if p.Y != slot.y {
			batch = append(batch, e.abs(evdev.ABS_MT_POSITION_Y, p.Y))
			slot.y = p.Y
		}
	}

	if len(batch) == 0 {
		return nil
	}

	return e.flush(batch)
}

// Up lifts every contact.
func (e *Encoder) Up() error {
	if e.closed {
		return ErrEncoderClosed
	}

	batch := make([]evdev.Event, 0, e.contacts*3+1)
	for i := 0; i < e.contacts; i++ {
		batch = append(batch, e.abs(evdev.ABS_MT_SLOT, int32(i)))
		if e.motion.HasPressure() {
			batch = append(batch, e.abs(evdev.ABS_MT_PRESSURE, e.motion.PressureMin()))
		}
		batch = append(batch, e.abs(evdev.ABS_MT_TRACKING_ID, evdev.TrackingIDNone))
		e.current = i
	}

	return e.flush(batch)
}

// Close releases the sink unless a failed write already did.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	return e.sink.Close()
}

func (e *Encoder) check(points []types.TouchPoint) error {
	if e.closed {
		return ErrEncoderClosed
	}
	if len(points) != e.contacts {
		return fmt.Errorf("expected %d contact(s), got %d", e.contacts, len(points))
	}
	return nil
}

func (e *Encoder) abs(code uint16, value int32) evdev.Event {
	return evdev.NewEvent(e.now(), evdev.EV_ABS, code, value)
}

// flush terminates batch with SYN_REPORT and writes it one record at a time.
func (e *Encoder) flush(batch []evdev.Event) error {
	batch = append(batch, evdev.NewEvent(e.now(), evdev.EV_SYN, evdev.SYN_REPORT, 0))

	for i := range batch {
		if err := e.write(&batch[i]); err != nil {
			_ = e.Close()
			return &WriteError{Event: batch[i], Err: err}
		}
		e.events++
	}

	e.batches++
	return nil
}

func (e *Encoder) write(ev *evdev.Event) error {
	data, err := ev.Bytes()
	if err != nil {
		return err
	}

	n, err := e.sink.Write(data)
	if err != nil {
		return err
	}
	if n < len(data) {
		return io.ErrShortWrite
	}
	return nil
}
