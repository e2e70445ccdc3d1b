package routecoord

import (
	"context"
	"testing"

	"github.com/dshills/busforge/pkg/pcb"
)

func TestRunRoutesAllWiresAndReturnsAWinner(t *testing.T) {
	grid := pcb.NewSparsePcb()
	grid.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 0}, Function: pcb.Belt{Dir: pcb.Right}})
	grid.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 10}, Function: pcb.Belt{Dir: pcb.Right}})

	wires := []pcb.NeededWire{
		{From: pcb.Point{X: 0, Y: 0}, To: pcb.Point{X: 8, Y: 0}, Kind: pcb.BeltWire},
		{From: pcb.Point{X: 0, Y: 10}, To: pcb.Point{X: 8, Y: 10}, Kind: pcb.BeltWire},
	}

	winner, err := Run(context.Background(), grid, wires, Options{Workers: 2, DesiredSolutions: 2, MasterSeed: 1})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, w := range wires {
		if !winner.IsBlocked(w.To) {
			t.Errorf("expected an entity at wire destination %v", w.To)
		}
	}
}

func TestRunReportsUnroutedWhenCancelledBeforeAnySolution(t *testing.T) {
	grid := pcb.NewSparsePcb()
	to := pcb.Point{X: 5, Y: 0}
	for _, d := range pcb.AllDirections {
		grid.Add(pcb.Entity{Location: to.Add(d.Vector()), Function: pcb.ElectricPole{}})
	}
	wires := []pcb.NeededWire{
		{From: pcb.Point{X: 0, Y: 0}, To: to, Kind: pcb.BeltWire},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, grid, wires, Options{Workers: 1, DesiredSolutions: 1, MasterSeed: 1})
	if err == nil {
		t.Fatal("expected an error when the context is already cancelled before any worker produces a solution")
	}
}

func TestRotateToFrontMovesFailedWireToFront(t *testing.T) {
	order := []pcb.NeededWire{{From: pcb.Point{X: 0, Y: 0}}, {From: pcb.Point{X: 1, Y: 0}}, {From: pcb.Point{X: 2, Y: 0}}}
	rotateToFront(order, 2)
	if order[0].From != (pcb.Point{X: 2, Y: 0}) {
		t.Errorf("expected index 2 rotated to front, got %+v", order)
	}
	if order[1].From != (pcb.Point{X: 0, Y: 0}) || order[2].From != (pcb.Point{X: 1, Y: 0}) {
		t.Errorf("expected the remaining elements shifted back, got %+v", order)
	}
}
