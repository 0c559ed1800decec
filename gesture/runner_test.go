package gesture

import (
	"context"
	"testing"
	"time"

	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/devices/evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner() (*Runner, *fakeClock) {
	clock := newFakeClock()
	return &Runner{Pacer: Pacer{Clock: clock, SampleRate: 1000}}, clock
}

func TestRunner_PinchStream(t *testing.T) {
	runner, _ := newTestRunner()
	sink := newRecorder()
	device := devices.NewTouchDevice("/dev/input/event2", sink, testMotion)

	pinch, err := NewPinch(testMotion, 10, 50, 45)
	require.NoError(t, err)

	result, err := runner.Run(context.Background(), device, pinch, 100*time.Millisecond)
	require.NoError(t, err)

	batches := sink.batches()
	require.GreaterOrEqual(t, len(batches), 3)

	down := batches[0]
	assert.Contains(t, down, abs(evdev.ABS_MT_TRACKING_ID, 0))
	assert.Contains(t, down, abs(evdev.ABS_MT_TRACKING_ID, 1))

	up := batches[len(batches)-1]
	assert.Equal(t, []record{
		abs(evdev.ABS_MT_SLOT, 0),
		abs(evdev.ABS_MT_PRESSURE, 0),
		abs(evdev.ABS_MT_TRACKING_ID, -1),
		abs(evdev.ABS_MT_SLOT, 1),
		abs(evdev.ABS_MT_PRESSURE, 0),
		abs(evdev.ABS_MT_TRACKING_ID, -1),
		syn,
	}, up)

	for i, batch := range batches {
		assert.Equal(t, syn, batch[len(batch)-1], "batch %d ends with SYN_REPORT", i)
	}

	for _, batch := range batches[1 : len(batches)-1] {
		for _, rec := range batch {
			assert.NotEqual(t, uint16(evdev.ABS_MT_TRACKING_ID), rec.Code, "moves never touch tracking ids")
		}
	}

	assert.Equal(t, len(batches)-2, result.Moves)
	assert.Equal(t, len(sink.records), result.Events)
	assert.Equal(t, "pinch", result.Gesture)
	assert.Equal(t, "/dev/input/event2", result.Device)
	assert.Equal(t, int64(100), result.DurationMs)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, pinch.At(1), result.End)
	assert.Equal(t, 1, sink.closed)
}

func TestRunner_EndsAtEndPoint(t *testing.T) {
	runner, _ := newTestRunner()
	sink := newRecorder()
	device := devices.NewTouchDevice("/dev/input/event0", sink, testMotion)

	swipe, err := NewSwipe(testMotion, 0, 0, 100, 100)
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), device, swipe, 500*time.Millisecond)
	require.NoError(t, err)

	var lastX, lastY int32 = -1, -1
	for _, rec := range sink.records {
		switch rec.Code {
		case evdev.ABS_MT_POSITION_X:
			assert.GreaterOrEqual(t, rec.Value, lastX, "X is monotonic")
			lastX = rec.Value
		case evdev.ABS_MT_POSITION_Y:
			assert.GreaterOrEqual(t, rec.Value, lastY, "Y is monotonic")
			lastY = rec.Value
		}
	}
	assert.Equal(t, int32(1000), lastX)
	assert.Equal(t, int32(2000), lastY)

	first := sink.batches()[0]
	assert.Contains(t, first, abs(evdev.ABS_MT_POSITION_X, 0))
	assert.Contains(t, first, abs(evdev.ABS_MT_POSITION_Y, 0))
}

func TestRunner_WriteFailureClosesOnce(t *testing.T) {
	runner, _ := newTestRunner()
	sink := newRecorder()
	sink.failAt = 14
	device := devices.NewTouchDevice("/dev/input/event0", sink, testMotion)

	pinch, err := NewPinch(testMotion, 10, 50, 45)
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), device, pinch, 100*time.Millisecond)

	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)

	require.NoError(t, device.Close())
	assert.Equal(t, 1, sink.closed)
}

func TestRunner_CancelLiftsContacts(t *testing.T) {
	runner, _ := newTestRunner()
	sink := newRecorder()
	device := devices.NewTouchDevice("/dev/input/event0", sink, testMotion)

	pinch, err := NewPinch(testMotion, 10, 50, 45)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = runner.Run(ctx, device, pinch, time.Second)
	assert.ErrorIs(t, err, context.Canceled)

	batches := sink.batches()
	require.Len(t, batches, 2, "down then up")
	assert.Contains(t, batches[1], abs(evdev.ABS_MT_TRACKING_ID, -1))
	assert.Equal(t, 1, sink.closed)
}
