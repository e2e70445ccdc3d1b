package routecoord

import "github.com/dshills/busforge/pkg/pcb"

// CollapseUndergrounds implements spec §4.5's underground-collapse pass,
// scoped to belt undergrounds (see DESIGN.md: pipes keep their tunnels,
// since a collapsed pipe run would need fluid-mixing checks the collapse
// pass has no way to re-run against the now-exposed intermediate tiles).
// It runs two polarity passes: entries walk forward, exits walk backward,
// each shrinking its tunnel by one tile wherever the next tile is empty,
// and fully collapsing a tunnel into plain belts once its two ends meet.
func CollapseUndergrounds(grid pcb.Pcb) {
	collapseEntries(grid)
	collapseExits(grid)
}

func collapseEntries(grid pcb.Pcb) {
	for _, e := range grid.Entities() {
		ub, ok := e.Function.(pcb.UndergroundBelt)
		if !ok || !ub.IsEntry {
			continue
		}
		loc, d := e.Location, ub.Dir
		for {
			next := loc.Add(d.Vector())
			if grid.IsBlocked(next) {
				if opposingTunnelEnd(grid, next, d, false) {
					grid.Replace(pcb.Entity{Location: loc, Function: pcb.Belt{Dir: d}})
					grid.Replace(pcb.Entity{Location: next, Function: pcb.Belt{Dir: d}})
				}
				break
			}
			grid.Replace(pcb.Entity{Location: loc, Function: pcb.Belt{Dir: d}})
			grid.Add(pcb.Entity{Location: next, Function: pcb.UndergroundBelt{Dir: d, IsEntry: true}})
			loc = next
		}
	}
}

func collapseExits(grid pcb.Pcb) {
	for _, e := range grid.Entities() {
		ub, ok := e.Function.(pcb.UndergroundBelt)
		if !ok || ub.IsEntry {
			continue
		}
		loc, d := e.Location, ub.Dir
		back := d.Opposite()
		for {
			next := loc.Add(back.Vector())
			if grid.IsBlocked(next) {
				if opposingTunnelEnd(grid, next, d, true) {
					grid.Replace(pcb.Entity{Location: loc, Function: pcb.Belt{Dir: d}})
					grid.Replace(pcb.Entity{Location: next, Function: pcb.Belt{Dir: d}})
				}
				break
			}
			grid.Replace(pcb.Entity{Location: loc, Function: pcb.Belt{Dir: d}})
			grid.Add(pcb.Entity{Location: next, Function: pcb.UndergroundBelt{Dir: d, IsEntry: false}})
			loc = next
		}
	}
}

// opposingTunnelEnd reports whether p holds the matching other end (entry
// when wantEntry is true, exit otherwise) of a same-axis belt tunnel.
func opposingTunnelEnd(grid pcb.Pcb, p pcb.Point, d pcb.Direction, wantEntry bool) bool {
	e, ok := grid.EntityAt(p)
	if !ok {
		return false
	}
	ub, ok := e.Function.(pcb.UndergroundBelt)
	return ok && ub.IsEntry == wantEntry && ub.Dir.IsSameAxis(d)
}
