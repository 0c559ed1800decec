package types

import "fmt"

// TouchPoint is one contact position in device units.
type TouchPoint struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (p TouchPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// GestureResult summarizes a gesture that was written to a touch device.
type GestureResult struct {
	ID         string       `json:"id"`
	Gesture    string       `json:"gesture"`
	Device     string       `json:"device"`
	Contacts   int          `json:"contacts"`
	Start      []TouchPoint `json:"start"`
	End        []TouchPoint `json:"end"`
	Moves      int          `json:"moves"`
	Events     int          `json:"events"`
	DurationMs int64        `json:"durationMs"`
}
