package world

import (
	"github.com/pthm-cable/platformer/components"
	"github.com/pthm-cable/platformer/systems"
)

// Contact is one intersecting ordered pair found during a step.
type Contact struct {
	A, B components.EntityID
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Contacts []Contact
}

// Step advances the world by dt seconds: collisions are resolved first, then
// every collider is integrated. It performs no I/O and needs no render context.
func (w *World) Step(dt float64) StepResult {
	w.gatherColliders()

	var result StepResult
	for _, c := range systems.ResolveCollisions(w.colliders) {
		result.Contacts = append(result.Contacts, Contact{A: w.owners[c.A], B: w.owners[c.B]})
	}

	systems.AdvanceAll(w.colliders, dt)

	// Drop the references so nothing holds onto world storage between frames
	clear(w.colliders)
	w.colliders = w.colliders[:0]
	w.owners = w.owners[:0]

	return result
}

// gatherColliders collects pointers to every collider, entities first.
func (w *World) gatherColliders() {
	w.colliders = w.colliders[:0]
	w.owners = w.owners[:0]
	for i := range w.entities {
		w.colliders = append(w.colliders, &w.entities[i].Collider)
		w.owners = append(w.owners, w.entities[i].ID)
	}
	for i := range w.characters {
		w.colliders = append(w.colliders, w.characters[i].Collider())
		w.owners = append(w.owners, w.characters[i].ID())
	}
}
