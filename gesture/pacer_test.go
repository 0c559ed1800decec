package gesture

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_SamplesOverDuration(t *testing.T) {
	clock := newFakeClock()
	pacer := Pacer{Clock: clock, SampleRate: 1000}

	var alphas []float64
	steps, err := pacer.Run(context.Background(), 10*time.Millisecond, func(alpha float64) error {
		alphas = append(alphas, alpha)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, alphas, 11)
	assert.Equal(t, 11, steps)
	for i := 0; i < 10; i++ {
		assert.InDelta(t, float64(i)/10, alphas[i], 1e-9)
	}
	assert.Equal(t, 1.0, alphas[10], "final sample lands on the end point")

	for _, d := range clock.sleeps {
		assert.Equal(t, time.Millisecond, d)
	}
}

func TestPacer_SampleRate(t *testing.T) {
	clock := newFakeClock()
	pacer := Pacer{Clock: clock, SampleRate: 250}

	steps, err := pacer.Run(context.Background(), 100*time.Millisecond, func(float64) error { return nil })
	require.NoError(t, err)

	assert.Equal(t, 26, steps)
	assert.Equal(t, 4*time.Millisecond, clock.sleeps[0])
}

func TestPacer_DefaultSampleRate(t *testing.T) {
	assert.Equal(t, time.Millisecond, Pacer{}.interval())
}

func TestPacer_ZeroDuration(t *testing.T) {
	var alphas []float64
	steps, err := Pacer{Clock: newFakeClock()}.Run(context.Background(), 0, func(alpha float64) error {
		alphas = append(alphas, alpha)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, steps)
	assert.Equal(t, []float64{1}, alphas)
}

func TestPacer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	clock := newFakeClock()

	calls := 0
	_, err := Pacer{Clock: clock}.Run(ctx, time.Second, func(float64) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
}

func TestPacer_StepError(t *testing.T) {
	boom := errors.New("boom")

	calls := 0
	_, err := Pacer{Clock: newFakeClock()}.Run(context.Background(), time.Second, func(float64) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
