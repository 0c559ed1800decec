package gesture

import (
	"context"
	"time"
)

const DefaultSampleRate = 1000

// Clock is the time source of a Pacer.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Pacer spreads samples over a duration. Progress is derived from elapsed
// time, not from a step count.
type Pacer struct {
	Clock Clock

	// SampleRate caps samples per second; the pacer sleeps 1/SampleRate
	// between samples.
	SampleRate int
}

func (p Pacer) clock() Clock {
	if p.Clock == nil {
		return SystemClock
	}
	return p.Clock
}

func (p Pacer) interval() time.Duration {
	rate := p.SampleRate
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return time.Second / time.Duration(rate)
}

// Run calls step with alpha = elapsed/duration until duration has passed,
// then once more with alpha = 1. It returns the number of steps taken.
// Cancelling ctx stops the loop before the next step.
func (p Pacer) Run(ctx context.Context, duration time.Duration, step func(alpha float64) error) (int, error) {
	clock := p.clock()
	interval := p.interval()
	start := clock.Now()

	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		elapsed := clock.Now().Sub(start)
		if elapsed >= duration {
			break
		}

		if err := step(float64(elapsed) / float64(duration)); err != nil {
			return steps, err
		}
		steps++

		clock.Sleep(interval)
	}

	if err := step(1); err != nil {
		return steps, err
	}
	return steps + 1, nil
}
