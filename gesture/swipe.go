package gesture

import (
	"fmt"

	"github.com/mobile-next/mobiletouch/devices"
	"github.com/mobile-next/mobiletouch/types"
)

// Swipe drags a single contact in a straight line. Coordinates are
// percentages of the X and Y axis spans.
type Swipe struct {
	start types.TouchPoint
	end   types.TouchPoint
}

func NewSwipe(motion devices.MotionRange, fromX, fromY, toX, toY int) (*Swipe, error) {
	start := types.TouchPoint{
		X: motion.ToDeviceX(float64(fromX)),
		Y: motion.ToDeviceY(float64(fromY)),
	}
	end := types.TouchPoint{
		X: motion.ToDeviceX(float64(toX)),
		Y: motion.ToDeviceY(float64(toY)),
	}

	if start == end {
		return nil, fmt.Errorf("swipe from %v to %v: %w", start, end, ErrNoMotion)
	}

	return &Swipe{start: start, end: end}, nil
}

func (s *Swipe) Name() string {
	return "swipe"
}

func (s *Swipe) Contacts() int {
	return 1
}

func (s *Swipe) At(alpha float64) []types.TouchPoint {
	alpha = clamp(alpha)
	return []types.TouchPoint{{
		X: lerp(s.start.X, s.end.X, alpha),
		Y: lerp(s.start.Y, s.end.Y, alpha),
	}}
}
