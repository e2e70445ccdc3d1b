package pcb

import "fmt"

// Pcb is the capability set the bus placer and router need from a grid: add,
// replace, and remove entities, query occupancy, and recover the current
// bounding box. SparsePcb and DensePcb both implement it and are externally
// indistinguishable — callers pick one for its performance profile, never
// its behavior.
type Pcb interface {
	// Add places e. It panics if any tile of e's footprint is already
	// occupied: placing on top of an existing entity is a contract
	// violation, not a recoverable error (spec §7).
	Add(e Entity)
	// Replace overwrites whatever occupies e's anchor tile with e. It is
	// used by the router to turn a placeholder scaffold tile into a real
	// entity.
	Replace(e Entity)
	// RemoveAt deletes whatever entity owns p, if any. It is idempotent.
	RemoveAt(p Point)
	// EntityAt returns the entity owning p, if any.
	EntityAt(p Point) (Entity, bool)
	// IsBlocked reports whether p is occupied by any entity.
	IsBlocked(p Point) bool
	// Entities returns every placed entity in a stable, deterministic
	// order.
	Entities() []Entity
	// EntityRect returns the bounding box of every placed entity.
	EntityRect() Rect
	// Clone returns an independent deep copy.
	Clone() Pcb
}

func entityAt(entities []Entity, find func(Entity) bool) (Entity, bool, int) {
	for i, e := range entities {
		if find(e) {
			return e, true, i
		}
	}
	return Entity{}, false, -1
}

func addPanicOnOverlap(entities []Entity, e Entity) {
	r := e.Rect()
	for _, ex := range entities {
		exr := ex.Rect()
		if rectsOverlap(r, exr) {
			panic(fmt.Sprintf("pcb: cannot place %#v at %v: overlaps existing entity at %v", e.Function, e.Location, ex.Location))
		}
	}
}

func rectsOverlap(a, b Rect) bool {
	return a.A.X < b.B.X && b.A.X < a.B.X && a.A.Y < b.B.Y && b.A.Y < a.B.Y
}

func boundingBox(entities []Entity) Rect {
	if len(entities) == 0 {
		return Rect{}
	}
	r := entities[0].Rect()
	for _, e := range entities[1:] {
		r = r.Union(e.Rect())
	}
	return r
}
