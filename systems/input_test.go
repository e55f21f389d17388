package systems

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/platformer/components"
)

func TestApplyMovementInput(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		wantX float64
	}{
		{"neither", Input{}, 0},
		{"left", Input{Left: true}, -PlayerSpeed},
		{"right", Input{Right: true}, PlayerSpeed},
		{"both", Input{Left: true, Right: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := components.Collider{Acceleration: r2.Vec{X: 9, Y: 9}}
			ApplyMovementInput(&c, tt.in)
			if c.Acceleration.X != tt.wantX {
				t.Errorf("Acceleration.X = %v, want %v", c.Acceleration.X, tt.wantX)
			}
			if c.Acceleration.Y != 0 {
				t.Errorf("Acceleration.Y = %v, want 0", c.Acceleration.Y)
			}
		})
	}
}

func TestInputThenAdvance(t *testing.T) {
	dt := 0.1
	c := components.Collider{}

	ApplyMovementInput(&c, Input{Right: true})
	Advance(&c, dt)

	if c.Velocity.X <= 0 {
		t.Errorf("Velocity.X = %v, want > 0", c.Velocity.X)
	}
	if c.Velocity.Y >= 0 {
		t.Errorf("Velocity.Y = %v, want < 0 (gravity)", c.Velocity.Y)
	}
}
