// Package world owns the bodies of a running game and advances them one frame at a time.
package world

import (
	"github.com/pthm-cable/platformer/components"
	"github.com/pthm-cable/platformer/systems"
)

// World holds every entity and character, in insertion order, plus the
// identity of the player-controlled character.
// A World is not safe for concurrent use.
type World struct {
	characters []components.Character
	entities   []components.Entity

	playerID  components.EntityID
	hasPlayer bool

	// colliders is scratch space reused by Step; it never outlives a call.
	colliders []*components.Collider
	owners    []components.EntityID
}

// New creates an empty world with no player.
func New() *World {
	return &World{}
}

// AddEntity appends an entity and returns its id.
func (w *World) AddEntity(e components.Entity) components.EntityID {
	w.entities = append(w.entities, e)
	return e.ID
}

// AddCharacter appends a character and returns its id.
func (w *World) AddCharacter(c components.Character) components.EntityID {
	w.characters = append(w.characters, c)
	return c.ID()
}

// SetPlayer designates the character that receives control input.
// The id is not checked; if no character matches, input is dropped.
func (w *World) SetPlayer(id components.EntityID) {
	w.playerID = id
	w.hasPlayer = true
}

// PlayerID returns the designated player id and whether one was set.
func (w *World) PlayerID() (components.EntityID, bool) {
	return w.playerID, w.hasPlayer
}

// FindCharacter returns the index of the character with the given id, or -1.
func (w *World) FindCharacter(id components.EntityID) int {
	for i := range w.characters {
		if w.characters[i].ID() == id {
			return i
		}
	}
	return -1
}

// Player returns the player character, or nil if it is missing.
// The pointer is valid until the next structural change to the world.
func (w *World) Player() *components.Character {
	if !w.hasPlayer {
		return nil
	}
	i := w.FindCharacter(w.playerID)
	if i < 0 {
		return nil
	}
	return &w.characters[i]
}

// Characters returns the characters in insertion order.
// The slice aliases world storage.
func (w *World) Characters() []components.Character {
	return w.characters
}

// Entities returns the non-character entities in insertion order.
// The slice aliases world storage.
func (w *World) Entities() []components.Entity {
	return w.entities
}

// Len returns the total number of bodies.
func (w *World) Len() int {
	return len(w.entities) + len(w.characters)
}

// Remove deletes the entity or character with the given id, keeping the order
// of the remaining bodies. Ids are never handed out again.
// Removing the player leaves the player id in place, so input is dropped.
func (w *World) Remove(id components.EntityID) bool {
	for i := range w.entities {
		if w.entities[i].ID == id {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	if i := w.FindCharacter(id); i >= 0 {
		w.characters = append(w.characters[:i], w.characters[i+1:]...)
		return true
	}
	return false
}

// ApplyPlayerInput routes the frame's controls to the player character.
// It must run before Step. Returns false when there is no player to control.
func (w *World) ApplyPlayerInput(in systems.Input) bool {
	p := w.Player()
	if p == nil {
		return false
	}
	systems.ApplyMovementInput(p.Collider(), in)
	return true
}

// Drawables appends the render view of every body to buf, entities first.
func (w *World) Drawables(buf []components.Drawable) []components.Drawable {
	for i := range w.entities {
		buf = append(buf, w.entities[i].Drawable())
	}
	for i := range w.characters {
		buf = append(buf, w.characters[i].Entity.Drawable())
	}
	return buf
}
