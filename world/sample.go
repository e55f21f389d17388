package world

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/platformer/components"
)

// Sample level colours
var (
	PlayerColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	GroundColor = color.RGBA{R: 50, G: 50, B: 50, A: 255}
)

// NewSample builds the starting level: a red player box at the origin resting
// on a static grey ground slab.
func NewSample() *World {
	return NewSampleAt(r2.Vec{})
}

// NewSampleAt builds the sample level with the player starting at pos.
func NewSampleAt(pos r2.Vec) *World {
	w := New()

	player := components.NewEntity(components.Collider{
		Position: pos,
		Mass:     1,
		Shape:    components.NewAxisAlignedBox(0.125, 0.125),
	}, PlayerColor)
	w.SetPlayer(w.AddCharacter(components.NewCharacter(player, "Player")))

	w.AddEntity(components.NewEntity(components.Collider{
		Position: r2.Vec{X: 0, Y: -0.25},
		Mass:     1,
		Static:   true,
		Shape:    components.NewAxisAlignedBox(1, 0.125),
	}, GroundColor))

	return w
}
