// Package components defines the bodies that make up the game world.
package components

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// EntityID identifies an entity for the lifetime of the process.
type EntityID uint32

// nextID is the process-wide id counter.
// Overflow after 2^32 allocations is not handled.
var nextID EntityID

// NextEntityID returns a fresh id, strictly greater than every id returned before.
// Ids are never reused, even after the entity is removed from its world.
func NextEntityID() EntityID {
	id := nextID
	nextID++
	return id
}

// Sprite holds the visual-only state of an entity.
type Sprite struct {
	Color color.RGBA
}

// Entity is a drawable body with a stable identity.
type Entity struct {
	ID       EntityID
	Collider Collider
	Sprite   Sprite
}

// NewEntity creates an entity with a freshly allocated id.
func NewEntity(collider Collider, c color.RGBA) Entity {
	return Entity{
		ID:       NextEntityID(),
		Collider: collider,
		Sprite:   Sprite{Color: c},
	}
}

// MaxNameLength is the longest display name a Character keeps, in runes.
const MaxNameLength = 29

// Character is an entity with a display name, used for controllable actors.
type Character struct {
	Entity Entity
	Name   string
}

// NewCharacter wraps an entity with a display name, truncating long names.
func NewCharacter(e Entity, name string) Character {
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	return Character{Entity: e, Name: name}
}

// ID returns the id of the embedded entity.
func (c *Character) ID() EntityID { return c.Entity.ID }

// Collider returns the embedded entity's collider.
func (c *Character) Collider() *Collider { return &c.Entity.Collider }

// Drawable is what a renderer needs to draw one body as a rectangle.
type Drawable struct {
	ID          EntityID
	Position    r2.Vec
	HalfExtents r2.Vec
	Color       color.RGBA
}

// Drawable returns the render view of the entity.
func (e *Entity) Drawable() Drawable {
	return Drawable{
		ID:          e.ID,
		Position:    e.Collider.Position,
		HalfExtents: e.Collider.HalfExtents(),
		Color:       e.Sprite.Color,
	}
}
