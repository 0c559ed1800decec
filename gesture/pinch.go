package gesture

import (
	"fmt"
	"math"

	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/types"
)

// Pinch moves two contacts symmetrically about the screen center along a
// line at Angle degrees from the X axis. Their distance from the center is
// given as a percentage of the half extents.
type Pinch struct {
	From  int
	To    int
	Angle int

	midX, midY   int32
	halfX, halfY int32
	cos, sin     float64
}

func NewPinch(motion devices.MotionRange, from, to, angle int) (*Pinch, error) {
	if from == to {
		return nil, fmt.Errorf("pinch from %d%% to %d%%: %w", from, to, ErrNoMotion)
	}

	rad := float64(angle) * (math.Pi / 180)
	return &Pinch{
		From:  from,
		To:    to,
		Angle: angle,
		midX:  motion.X.Mid(),
		midY:  motion.Y.Mid(),
		halfX: motion.X.Half(),
		halfY: motion.Y.Half(),
		cos:   math.Cos(rad),
		sin:   math.Sin(rad),
	}, nil
}

func (p *Pinch) Name() string {
	return "pinch"
}

func (p *Pinch) Contacts() int {
	return 2
}

// Midpoint is the center both contacts are mirrored around.
func (p *Pinch) Midpoint() types.TouchPoint {
	return types.TouchPoint{X: p.midX, Y: p.midY}
}

func (p *Pinch) At(alpha float64) []types.TouchPoint {
	percent := float64(p.From) + float64(p.To-p.From)*clamp(alpha)
	dx := int32(float64(p.halfX) * (percent / 100) * p.cos)
	dy := int32(float64(p.halfY) * (percent / 100) * p.sin)

	return []types.TouchPoint{
		{X: p.midX + dx, Y: p.midY + dy},
		{X: p.midX - dx, Y: p.midY - dy},
	}
}
