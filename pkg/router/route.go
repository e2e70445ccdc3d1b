// Package router implements spec §4.4: the Lee-wavefront core that finds a
// path of belts (or pipes) between two tiles on a pcb.Pcb grid, with
// optional underground-belt hopping. Ported from the original
// implementation's mylee.rs, generalized from the original's belt-only walk
// into one parameterized by pcb.WireKind so the same search serves both
// belts and pipes.
package router

import (
	"github.com/dshills/busforge/pkg/pcb"
)

// StepKind distinguishes the two kinds of hop a route can take.
type StepKind int

const (
	// Normal moves one tile in Dir.
	Normal StepKind = iota
	// Underground tunnels Gap+2 tiles in Dir: one entry tile, Gap hidden
	// tiles passed through unmarked, one exit tile.
	Underground
)

// RouteStep is one hop of a LogisticRoute.
type RouteStep struct {
	Kind StepKind
	Dir  pcb.Direction
	Gap  int // meaningful only when Kind == Underground
}

// LogisticRoute is the ordered sequence of hops a walker took from its
// start to its destination.
type LogisticRoute []RouteStep

// VisitedMode selects how the search's shared visited set is keyed.
type VisitedMode int

const (
	// PositionOnly marks a tile visited regardless of the direction a
	// walker arrived from. Cheaper, but misses paths that would cross
	// themselves underneath an underground belt.
	PositionOnly VisitedMode = iota
	// PositionDirection marks (tile, arrival direction) pairs visited
	// independently, allowing a later walker to cross an earlier one's
	// trail from a different direction.
	PositionDirection
)

// Options configures one Route search.
type Options struct {
	PreferSameDirection bool
	UseUndergroundBelts bool
	Visited             VisitedMode
}

type walker struct {
	pos  pcb.Point
	path LogisticRoute
	own  map[pcb.Point]bool // tiles (including underground mid/end) this walker has touched
}

func (w walker) extend(pos pcb.Point, step RouteStep, touched ...pcb.Point) walker {
	path := make(LogisticRoute, len(w.path)+1)
	copy(path, w.path)
	path[len(w.path)] = step
	own := make(map[pcb.Point]bool, len(w.own)+len(touched))
	for p := range w.own {
		own[p] = true
	}
	for _, p := range touched {
		own[p] = true
	}
	return walker{pos: pos, path: path, own: own}
}

type visitedSet struct {
	mode    VisitedMode
	byPoint map[pcb.Point]bool
	byDir   map[pcb.Point]map[pcb.Direction]bool
}

func newVisitedSet(mode VisitedMode) *visitedSet {
	return &visitedSet{
		mode:    mode,
		byPoint: make(map[pcb.Point]bool),
		byDir:   make(map[pcb.Point]map[pcb.Direction]bool),
	}
}

func (v *visitedSet) seen(p pcb.Point, d pcb.Direction) bool {
	if v.mode == PositionOnly {
		return v.byPoint[p]
	}
	return v.byDir[p][d]
}

func (v *visitedSet) mark(p pcb.Point, d pcb.Direction) {
	if v.mode == PositionOnly {
		v.byPoint[p] = true
		return
	}
	if v.byDir[p] == nil {
		v.byDir[p] = make(map[pcb.Direction]bool)
	}
	v.byDir[p][d] = true
}

// Route searches for a path of kind from from to to on grid, returning the
// completed LogisticRoute and true on success, or (nil, false) if no walker
// can reach to before the search exhausts.
func Route(grid pcb.Pcb, from, to pcb.Point, kind pcb.WireKind, opts Options) (LogisticRoute, bool) {
	if from == to {
		return LogisticRoute{}, true
	}

	bound := grid.EntityRect().Pad(2)
	bound = pcb.Rect{
		A: pcb.Point{X: min(bound.A.X, from.X, to.X) - 2, Y: min(bound.A.Y, from.Y, to.Y) - 2},
		B: pcb.Point{X: max(bound.B.X, from.X, to.X) + 2, Y: max(bound.B.Y, from.Y, to.Y) + 2},
	}

	visited := newVisitedSet(opts.Visited)
	layer := []walker{{pos: from, own: map[pcb.Point]bool{from: true}}}
	visited.mark(from, pcb.Up)
	visited.mark(from, pcb.Down)
	visited.mark(from, pcb.Left)
	visited.mark(from, pcb.Right)

	for len(layer) > 0 {
		var next []walker
		for _, w := range layer {
			dirs := orderedDirections(w, opts.PreferSameDirection)
			for _, d := range dirs {
				goTo := w.pos.Add(d.Vector())
				if !bound.Contains(goTo) {
					continue
				}
				if grid.IsBlocked(goTo) {
					continue
				}
				if visited.seen(goTo, d) {
					continue
				}
				if opts.Visited == PositionDirection && w.own[goTo] {
					continue
				}
				if kind.Pipe && hasMixedFluidNeighbor(grid, goTo, kind.Fluid) {
					continue
				}
				visited.mark(goTo, d)
				nw := w.extend(goTo, RouteStep{Kind: Normal, Dir: d}, goTo)
				if goTo == to {
					return nw.path, true
				}
				next = append(next, nw)
			}

			if opts.UseUndergroundBelts && len(w.path) > 0 {
				d := w.path[len(w.path)-1].Dir
				for gap := 0; gap <= kind.GapSize(); gap++ {
					// entry sits one tile ahead of pos; exit sits gap hidden
					// tiles beyond entry (gap==0 means entry and exit are
					// adjacent, the minimum valid tunnel).
					entry := w.pos.Add(d.Vector())
					exit := w.pos.Add(d.Vector().Scale(gap + 2))

					if mergesIntoExistingTunnel(grid, exit, d, kind) {
						break
					}
					if grid.IsBlocked(entry) {
						continue
					}
					if !bound.Contains(exit) || grid.IsBlocked(exit) {
						continue
					}
					if visited.seen(exit, d) {
						continue
					}
					if w.own[entry] || w.own[exit] {
						continue
					}
					visited.mark(exit, d)
					nw := w.extend(exit, RouteStep{Kind: Underground, Dir: d, Gap: gap}, entry, exit)
					if exit == to {
						return nw.path, true
					}
					next = append(next, nw)
				}
			}
		}
		layer = next
	}
	return nil, false
}

// orderedDirections returns the four cardinal directions, with the walker's
// last-taken direction moved to the front when preferSame is set — this
// biases the search toward straight runs, which place and collapse more
// cleanly.
func orderedDirections(w walker, preferSame bool) []pcb.Direction {
	dirs := pcb.AllDirections
	if !preferSame || len(w.path) == 0 {
		return dirs[:]
	}
	last := w.path[len(w.path)-1].Dir
	out := make([]pcb.Direction, 0, 4)
	out = append(out, last)
	for _, d := range dirs {
		if d != last {
			out = append(out, d)
		}
	}
	return out
}

// mergesIntoExistingTunnel reports whether mid already holds a same-axis
// underground of kind: continuing the search past it would merge into
// someone else's tunnel, so the underground-gap search stops growing in
// this direction.
func mergesIntoExistingTunnel(grid pcb.Pcb, mid pcb.Point, d pcb.Direction, kind pcb.WireKind) bool {
	e, ok := grid.EntityAt(mid)
	if !ok {
		return false
	}
	if kind.Pipe {
		up, ok := e.Function.(pcb.UndergroundPipe)
		return ok && up.Dir.IsSameAxis(d)
	}
	ub, ok := e.Function.(pcb.UndergroundBelt)
	return ok && ub.Dir.IsSameAxis(d)
}

// hasMixedFluidNeighbor reports whether any of goTo's four neighbors is a
// Pipe carrying a different (non-empty) fluid than fluid, which would mix
// incompatible fluids on contact. Underground pipes carry no fluid name and
// are not checked.
func hasMixedFluidNeighbor(grid pcb.Pcb, goTo pcb.Point, fluid string) bool {
	for _, d := range pcb.AllDirections {
		n := goTo.Add(d.Vector())
		e, ok := grid.EntityAt(n)
		if !ok {
			continue
		}
		switch f := e.Function.(type) {
		case pcb.Pipe:
			if f.Fluid != "" && f.Fluid != fluid {
				return true
			}
		}
	}
	return false
}

func min(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func max(vs ...int) int {
	m := vs[0]
	for _, v := range vs[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
