package components

import (
	"image/color"
	"strings"
	"testing"
)

func TestNextEntityIDMonotonic(t *testing.T) {
	const n = 100
	ids := make([]EntityID, n)
	for i := range ids {
		ids[i] = NextEntityID()
	}

	seen := make(map[EntityID]bool, n)
	for i, id := range ids {
		if seen[id] {
			t.Fatalf("id %d returned twice", id)
		}
		seen[id] = true
		if i > 0 && id <= ids[i-1] {
			t.Errorf("ids[%d] = %d, want > %d", i, id, ids[i-1])
		}
	}
}

func TestNewEntityAllocatesDistinctIDs(t *testing.T) {
	a := NewEntity(Collider{}, color.RGBA{})
	b := NewEntity(Collider{}, color.RGBA{})
	if a.ID == b.ID {
		t.Errorf("entities share id %d", a.ID)
	}
}

func TestNewCharacterTruncatesName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "Player", "Player"},
		{"exact", "abcdefghijklmnopqrstuvwxyzabc", "abcdefghijklmnopqrstuvwxyzabc"},
		{"long", "abcdefghijklmnopqrstuvwxyzabcdef", "abcdefghijklmnopqrstuvwxyzabc"},
		{"multibyte", strings.Repeat("é", 40), strings.Repeat("é", MaxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter(Entity{}, tt.in)
			if c.Name != tt.want {
				t.Errorf("Name = %q, want %q", c.Name, tt.want)
			}
		})
	}
}

func TestCharacterColliderAliasesEntity(t *testing.T) {
	c := NewCharacter(NewEntity(Collider{}, color.RGBA{}), "p")
	c.Collider().Static = true
	if !c.Entity.Collider.Static {
		t.Error("mutation through Collider() not visible on embedded entity")
	}
	if c.ID() != c.Entity.ID {
		t.Errorf("ID() = %d, want %d", c.ID(), c.Entity.ID)
	}
}

func TestNewAxisAlignedBoxClampsNegative(t *testing.T) {
	b := NewAxisAlignedBox(-1, 0.5)
	if b.HalfExtents.X != 0 || b.HalfExtents.Y != 0.5 {
		t.Errorf("HalfExtents = %v, want {0 0.5}", b.HalfExtents)
	}
	if b.Kind() != ShapeAxisAlignedBox {
		t.Errorf("Kind() = %v, want %v", b.Kind(), ShapeAxisAlignedBox)
	}
}

func TestDrawable(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	e := NewEntity(Collider{Shape: NewAxisAlignedBox(1, 2)}, red)
	e.Collider.Position.X = 3

	d := e.Drawable()
	if d.ID != e.ID || d.Position.X != 3 || d.HalfExtents.Y != 2 || d.Color != red {
		t.Errorf("Drawable() = %+v", d)
	}

	none := Entity{}
	if got := none.Drawable().HalfExtents; got.X != 0 || got.Y != 0 {
		t.Errorf("shapeless HalfExtents = %v, want zero", got)
	}
}
