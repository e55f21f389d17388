// Package systems contains the per-frame simulation rules for colliders.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/platformer/components"
)

// Physics constants
const (
	Gravity     = 0.981 // world units/s², deliberately scaled down
	PlayerSpeed = 1.0   // horizontal acceleration from input, world units/s²
)

// Advance integrates one collider forward by dt seconds.
// Static colliders are left untouched. Gravity overwrites the y acceleration
// while x keeps whatever input set this frame. Acceleration is cleared after
// integrating, so forces must be re-applied every frame.
// dt must be non-negative; it is not validated.
func Advance(c *components.Collider, dt float64) {
	if c.Static {
		return
	}

	c.Acceleration.Y = -Gravity

	// Semi-implicit Euler: velocity first, then position from the new velocity
	c.Velocity = r2.Add(c.Velocity, r2.Scale(dt, c.Acceleration))
	c.Position = r2.Add(c.Position, r2.Scale(dt, c.Velocity))

	c.Acceleration = r2.Vec{}
}

// AdvanceAll integrates every collider in the list.
func AdvanceAll(colliders []*components.Collider, dt float64) {
	for _, c := range colliders {
		Advance(c, dt)
	}
}
