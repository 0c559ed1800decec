package gesture

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/types"
	"github.com/mobile-next/mobiletouch/utils"
	log "github.com/sirupsen/logrus"
)

// Runner performs a planned gesture on an opened touch device: one down
// batch, paced move batches, one up batch.
type Runner struct {
	Pacer Pacer
}

func NewRunner(sampleRate int) *Runner {
	return &Runner{Pacer: Pacer{SampleRate: sampleRate}}
}

// Run writes the gesture and closes device on every path. When ctx is
// cancelled mid-gesture the contacts are lifted before returning ctx.Err().
func (r *Runner) Run(ctx context.Context, device *devices.TouchDevice, plan Planner, duration time.Duration) (*types.GestureResult, error) {
	clock := r.Pacer.clock()

	result := &types.GestureResult{
		ID:       uuid.NewString(),
		Gesture:  plan.Name(),
		Device:   device.Path,
		Contacts: plan.Contacts(),
		Start:    plan.At(0),
		End:      plan.At(1),
	}

	entry := utils.Logger().WithFields(log.Fields{
		"id":      result.ID,
		"gesture": result.Gesture,
		"device":  result.Device,
	})

	encoder := NewEncoder(device, plan.Contacts(), device.Motion)
	encoder.now = clock.Now
	defer encoder.Close()

	began := clock.Now()
	entry.WithField("start", result.Start).Debug("contacts down")
	if err := encoder.Down(result.Start); err != nil {
		return nil, err
	}

	moves := encoder.Batches()
	_, err := r.Pacer.Run(ctx, duration, func(alpha float64) error {
		return encoder.Move(plan.At(alpha))
	})
	if err != nil {
		if ctx.Err() != nil {
			entry.Warn("gesture interrupted, lifting contacts")
			if upErr := encoder.Up(); upErr != nil {
				return nil, fmt.Errorf("%w (lifting contacts: %v)", err, upErr)
			}
		}
		return nil, err
	}
	moves = encoder.Batches() - moves

	if err := encoder.Up(); err != nil {
		return nil, err
	}

	result.Moves = moves
	result.Events = encoder.Events()
	result.DurationMs = clock.Now().Sub(began).Milliseconds()

	entry.WithFields(log.Fields{
		"moves":  result.Moves,
		"events": result.Events,
		"ms":     result.DurationMs,
	}).Debug("contacts up")

	return result, nil
}
