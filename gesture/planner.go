// Package gesture turns pinch and swipe parameters into timed multi-touch
// event streams written to a touch device.
package gesture

import (
	"errors"

	"github.com/mobile-next/mobiletouch/types"
)

// ErrNoMotion is returned for a gesture whose start and end coincide.
var ErrNoMotion = errors.New("gesture start and end are the same")

// Planner yields the contact positions of a gesture as a function of its
// progress alpha in [0,1]. At(0) is the start, At(1) the end.
type Planner interface {
	Name() string
	Contacts() int
	At(alpha float64) []types.TouchPoint
}

func clamp(alpha float64) float64 {
	switch {
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	default:
		return alpha
	}
}

func lerp(a, b int32, alpha float64) int32 {
	return int32(float64(a) + float64(b-a)*alpha)
}
