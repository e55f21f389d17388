package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/platformer/components"
)

// Input holds the directional controls sampled for one frame.
type Input struct {
	Left  bool
	Right bool
}

// Direction returns -1, 0 or +1. Holding both directions cancels out.
func (in Input) Direction() float64 {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

// ApplyMovementInput resets the collider's acceleration and sets its x
// component from the input. It must run before Advance in the same frame,
// since Advance consumes and clears acceleration.
func ApplyMovementInput(c *components.Collider, in Input) {
	c.Acceleration = r2.Vec{}
	c.Acceleration.X = in.Direction() * PlayerSpeed
}
