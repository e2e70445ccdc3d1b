package router

import "github.com/dshills/busforge/pkg/pcb"

// ApplyRoute walks route from from, writing belt or pipe entities onto grid
// per spec §4.4.2. The from tile is expected to already host a terminating
// scaffold belt the bus placer left behind, so the first step overwrites it
// via Replace; every subsequent tile is newly occupied and uses Add.
func ApplyRoute(grid pcb.Pcb, from pcb.Point, kind pcb.WireKind, route LogisticRoute) {
	pos := from
	first := true
	place := func(p pcb.Point, fn pcb.Function) {
		if first {
			grid.Replace(pcb.Entity{Location: p, Function: fn})
			first = false
			return
		}
		grid.Add(pcb.Entity{Location: p, Function: fn})
	}

	for _, step := range route {
		switch step.Kind {
		case Normal:
			pos = pos.Add(step.Dir.Vector())
			place(pos, normalFunction(kind, step.Dir))
		case Underground:
			entry := pos.Add(step.Dir.Vector())
			exit := pos.Add(step.Dir.Vector().Scale(step.Gap + 2))
			place(entry, undergroundEntryFunction(kind, step.Dir))
			grid.Add(pcb.Entity{Location: exit, Function: undergroundExitFunction(kind, step.Dir)})
			pos = exit
		}
	}
}

func normalFunction(kind pcb.WireKind, d pcb.Direction) pcb.Function {
	if kind.Pipe {
		return pcb.Pipe{Fluid: kind.Fluid}
	}
	return pcb.Belt{Dir: d}
}

// undergroundEntryFunction and undergroundExitFunction diverge for pipes:
// belts share one Dir on both ends and distinguish role with IsEntry, while
// pipes (which carry no such flag) use the opposite-direction convention —
// the exit's Dir is the tunnel's reverse — so each end's Dir points toward
// its partner. A pipe entry and a pipe exit therefore look alike on the
// grid; the role of a lone end is not recorded.
func undergroundEntryFunction(kind pcb.WireKind, d pcb.Direction) pcb.Function {
	if kind.Pipe {
		return pcb.UndergroundPipe{Dir: d}
	}
	return pcb.UndergroundBelt{Dir: d, IsEntry: true}
}

func undergroundExitFunction(kind pcb.WireKind, d pcb.Direction) pcb.Function {
	if kind.Pipe {
		return pcb.UndergroundPipe{Dir: d.Opposite()}
	}
	return pcb.UndergroundBelt{Dir: d, IsEntry: false}
}
