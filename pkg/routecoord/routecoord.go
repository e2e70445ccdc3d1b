// Package routecoord implements spec §4.5: the routing coordinator that
// drives a bounded pool of workers, each running an independent simulated
// annealing loop over router.Route, and picks the best full-grid solution.
// Ported from the original implementation's coordinator in main.rs, which
// drove the same per-wire annealing loop single-threaded; this version
// generalizes it to the worker-pool-with-cancellation model spec §5
// describes, grounded on golang.org/x/sync/errgroup for the pool.
package routecoord

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/busforge/pkg/pcb"
	"github.com/dshills/busforge/pkg/rng"
	"github.com/dshills/busforge/pkg/router"
)

// Options configures one coordinator run.
type Options struct {
	// Workers is the size of the bounded pool. Zero defaults to 8.
	Workers int
	// DesiredSolutions is how many full-grid solutions the coordinator
	// collects before cancelling the remaining workers. Zero defaults to
	// 10.
	DesiredSolutions int
	// MasterSeed seeds every worker's deterministic RNG (see pkg/rng).
	MasterSeed uint64
	// ConfigHash perturbs the per-worker seed derivation, so a change in
	// the input recipe set also changes the retry order instead of
	// silently reusing a stale sequence.
	ConfigHash []byte
}

const (
	defaultWorkers          = 8
	defaultDesiredSolutions = 10
	startTemperature        = 20
)

// solution is one worker's fully-routed grid, reported over the result
// channel.
type solution struct {
	grid pcb.Pcb
}

// Run routes every wire in wires onto grid, trying a bounded pool of workers
// each annealing the wire order independently, and returns the winning grid:
// the solution with the fewest entities after underground-collapse. It
// returns an error only if every worker's context is cancelled before any
// worker produces a solution (spec §7's "no solution" case).
func Run(ctx context.Context, grid pcb.Pcb, wires []pcb.NeededWire, opts Options) (pcb.Pcb, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	desired := opts.DesiredSolutions
	if desired <= 0 {
		desired = defaultDesiredSolutions
	}

	results := make(chan solution, workers)
	var cancelled atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		workerIdx := i
		g.Go(func() error {
			runWorker(gctx, grid, wires, opts, workerIdx, &cancelled, results)
			return nil
		})
	}

	var collected []solution
	done := make(chan struct{})
	go func() {
		defer close(done)
		for len(collected) < desired {
			select {
			case s, ok := <-results:
				if !ok {
					return
				}
				collected = append(collected, s)
			case <-gctx.Done():
				return
			}
		}
	}()

	<-done
	cancelled.Store(true)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Drain so workers blocked on a channel send can observe
		// cancellation and exit instead of leaking.
		for range results {
		}
	}()
	_ = g.Wait()
	close(results)
	<-drained

	if len(collected) == 0 {
		return nil, errUnrouted{}
	}
	return pickWinner(collected), nil
}

// errUnrouted is spec §7's "no solution" case: cancellation fired before any
// worker produced a solution.
type errUnrouted struct{}

func (errUnrouted) Error() string { return "routecoord: no worker produced a solution" }

// runWorker drives one worker's annealing loop until the coordinator signals
// cancellation, sending every full-grid solution it finds to results.
func runWorker(ctx context.Context, base pcb.Pcb, wires []pcb.NeededWire, opts Options, workerIdx int, cancelled *atomic.Bool, results chan<- solution) {
	workerName := workerLabel(workerIdx)
	r := rng.New(opts.MasterSeed, workerName, opts.ConfigHash)

	order := make([]pcb.NeededWire, len(wires))
	copy(order, wires)

	temperature := startTemperature
	panicCount := 0

	for {
		if cancelled.Load() || ctx.Err() != nil {
			return
		}

		g := base.Clone()
		failIdx, ok := attempt(g, order)
		if !ok {
			rotateToFront(order, failIdx)
			panicCount++
			if panicCount == temperature {
				panicCount = 0
				temperature++
				r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
			}
			continue
		}

		select {
		case results <- solution{grid: g}:
		case <-ctx.Done():
			return
		}

		// Keep searching for alternative layouts instead of resting on
		// the first success: reshuffling biases the next attempt toward
		// a different (possibly cheaper after collapse) routing.
		r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
}

// attempt runs router.Route for every wire in order against g, applying
// each success immediately. It returns the index of the first failure and
// false, or an undefined index and true if every wire routed.
func attempt(g pcb.Pcb, order []pcb.NeededWire) (int, bool) {
	for i, w := range order {
		route, ok := router.Route(g, w.From, w.To, w.Kind, router.Options{
			PreferSameDirection: true,
			UseUndergroundBelts: true,
			Visited:             router.PositionDirection,
		})
		if !ok {
			return i, false
		}
		router.ApplyRoute(g, w.From, w.Kind, route)
	}
	return 0, true
}

// rotateToFront moves order[i] to the front, shifting the elements before it
// back by one, per spec §4.5's annealing schedule: retries bias toward
// placing hard wires first.
func rotateToFront(order []pcb.NeededWire, i int) {
	if i <= 0 {
		return
	}
	w := order[i]
	copy(order[1:i+1], order[0:i])
	order[0] = w
}

// pickWinner returns the solution with the fewest entities after
// underground-collapse, collapsing every candidate first so the comparison
// is apples to apples.
func pickWinner(candidates []solution) pcb.Pcb {
	best := candidates[0].grid
	CollapseUndergrounds(best)
	bestCount := len(best.Entities())
	for _, c := range candidates[1:] {
		CollapseUndergrounds(c.grid)
		if n := len(c.grid.Entities()); n < bestCount {
			best = c.grid
			bestCount = n
		}
	}
	return best
}

func workerLabel(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	if i < len(letters) {
		return "worker-" + string(letters[i])
	}
	return "worker-n"
}
