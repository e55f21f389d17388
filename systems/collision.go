package systems

import (
	"math"

	"github.com/pthm-cable/platformer/components"
)

// pairTest reports whether two colliders of a known shape pair intersect.
type pairTest func(a, b *components.Collider) bool

type shapePair [2]components.ShapeKind

// pairTests holds the supported shape pairs. Pairs not listed never collide.
var pairTests = map[shapePair]pairTest{
	{components.ShapeAxisAlignedBox, components.ShapeAxisAlignedBox}: boxesIntersect,
}

// Intersects reports whether two colliders touch or overlap.
// Shape pairs without a registered test, and colliders without a shape,
// report false.
func Intersects(a, b *components.Collider) bool {
	if a.Shape == nil || b.Shape == nil {
		return false
	}
	test, ok := pairTests[shapePair{a.Shape.Kind(), b.Shape.Kind()}]
	if !ok {
		return false
	}
	return test(a, b)
}

// boxesIntersect is the inclusive separating-axis test for two axis-aligned boxes.
// Touching edges count as intersecting.
func boxesIntersect(a, b *components.Collider) bool {
	ha := a.Shape.Extents()
	hb := b.Shape.Extents()
	return ha.X+hb.X >= math.Abs(b.Position.X-a.Position.X) &&
		ha.Y+hb.Y >= math.Abs(b.Position.Y-a.Position.Y)
}

// Contact is one intersecting ordered pair, as indices into the resolved slice.
type Contact struct {
	A, B int
}

// ResolveCollisions tests every ordered pair of distinct colliders and freezes
// both bodies of each intersecting pair by marking them static. Positions and
// velocities are not changed; a frozen body stays frozen.
// Both directions of each pair are visited, so every contact appears twice.
func ResolveCollisions(colliders []*components.Collider) []Contact {
	var contacts []Contact
	for i, a := range colliders {
		for j, b := range colliders {
			if i == j || a == b {
				continue
			}
			if Intersects(a, b) {
				a.Static = true
				b.Static = true
				contacts = append(contacts, Contact{A: i, B: j})
			}
		}
	}
	return contacts
}
