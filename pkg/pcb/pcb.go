// Package pcb implements the grid model: the Entity/Function vocabulary
// placed entities are built from, and the Pcb capability interface the bus
// placer and router mutate through, with two interchangeable storage
// backends.
package pcb

import "github.com/dshills/busforge/pkg/geom"

// Point, Vector, Direction and Rect are re-exported from geom so that
// callers working purely in terms of the grid model don't need a second
// import.
type (
	Point     = geom.Point
	Vector    = geom.Vector
	Direction = geom.Direction
	Rect      = geom.Rect
)

const (
	Up    = geom.Up
	Down  = geom.Down
	Left  = geom.Left
	Right = geom.Right
)

// AllDirections re-exports geom.AllDirections for callers working purely in
// terms of the pcb package.
var AllDirections = geom.AllDirections

// Entity is a single placed thing: a Function occupying a footprint
// anchored at Location.
type Entity struct {
	Location Point
	Function Function
}

// Rect returns the entity's occupied bounding box.
func (e Entity) Rect() Rect {
	sz := e.Function.Size()
	return Rect{A: e.Location, B: e.Location.Add(Vector{X: sz.X, Y: sz.Y})}
}

// Overlaps reports whether p lies within e's footprint.
func (e Entity) Overlaps(p Point) bool {
	return e.Rect().Contains(p)
}

// WireKind distinguishes the two transport mediums a NeededWire can carry.
type WireKind struct {
	Pipe  bool
	Fluid string
}

// BeltWire is the WireKind for an ordinary belt connection.
var BeltWire = WireKind{}

// PipeWire builds the WireKind for a pipe connection carrying fluid.
func PipeWire(fluid string) WireKind {
	return WireKind{Pipe: true, Fluid: fluid}
}

// GapSize is the maximum number of tiles an underground connection of this
// kind can span between entry and exit: 4 for belts, 9 for pipes.
func (k WireKind) GapSize() int {
	if k.Pipe {
		return 9
	}
	return 4
}

// NeededWire is a routing request the bus placer emits and the routing
// coordinator later satisfies: a connection of Kind between From and To.
type NeededWire struct {
	From, To Point
	Kind     WireKind
}
