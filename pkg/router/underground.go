package router

// InsertUndergroundBelts rewrites a sequence of plain directional hops into
// a LogisticRoute that takes underground shortcuts through maximal runs of
// identical direction, per spec §4.4.1. It is the post-pass a router search
// run with Options.UseUndergroundBelts == false needs before ApplyRoute, so
// a position-only search (cheaper, but blind to underground hops during the
// search itself) can still produce an underground-using route afterward.
func InsertUndergroundBelts(steps LogisticRoute, gapSize int) LogisticRoute {
	var out LogisticRoute
	i := 0
	for i < len(steps) {
		d := steps[i].Dir
		k := 1
		for i+k < len(steps) && steps[i+k].Dir == d {
			k++
		}
		if k > 2 {
			// An Underground{d,gap} covers gap+2 tiles (matching Route's
			// entry/exit convention): one entry tile, gap hidden tiles, one
			// exit tile. Consuming exactly that many input steps keeps the
			// walk's total displacement identical before and after the
			// collapse, even when the run is longer than gapSize+2 allows
			// in one hop (the remainder simply starts a new same-direction
			// run on the next loop iteration).
			gap := k - 2
			if gap > gapSize {
				gap = gapSize
			}
			out = append(out, RouteStep{Kind: Underground, Dir: d, Gap: gap})
			i += gap + 2
			continue
		}
		out = append(out, RouteStep{Kind: Normal, Dir: d})
		i++
	}
	return out
}
