package render

import (
	"strings"
	"testing"

	"github.com/dshills/busforge/pkg/pcb"
)

func sampleGrid() pcb.Pcb {
	grid := pcb.NewSparsePcb()
	grid.Add(pcb.Entity{Location: pcb.Point{X: 0, Y: 0}, Function: pcb.Assembler{Recipe: "iron-gear-wheel"}})
	grid.Add(pcb.Entity{Location: pcb.Point{X: 4, Y: 0}, Function: pcb.Belt{Dir: pcb.Right}})
	grid.Add(pcb.Entity{Location: pcb.Point{X: 5, Y: 0}, Function: pcb.Inserter{Orientation: pcb.Left, Kind: pcb.InserterNormal}})
	return grid
}

func TestASCIIRendersNonEmptyGrid(t *testing.T) {
	out := ASCII(sampleGrid())
	if out == "" {
		t.Fatal("expected non-empty ASCII render")
	}
	if !strings.ContainsRune(out, 'I') {
		// iron-gear-wheel uppercases to "IRON-GEAR-WHEEL", first rune 'I'
		t.Errorf("expected the recipe initial in the render, got:\n%s", out)
	}
}

func TestASCIIEmptyGrid(t *testing.T) {
	if out := ASCII(pcb.NewSparsePcb()); out != "" {
		t.Errorf("expected empty render for an empty grid, got %q", out)
	}
}

func TestSVGProducesValidDocument(t *testing.T) {
	out := SVG(sampleGrid(), DefaultSVGOptions())
	s := string(out)
	if !strings.Contains(s, "<svg") || !strings.Contains(s, "</svg>") {
		t.Errorf("expected a well-formed svg document, got:\n%s", s)
	}
}

func TestBlueprintRoundTrips(t *testing.T) {
	grid := sampleGrid()
	s, err := Blueprint(grid)
	if err != nil {
		t.Fatalf("Blueprint failed: %v", err)
	}
	entities, err := DecodeBlueprint(s)
	if err != nil {
		t.Fatalf("DecodeBlueprint failed: %v", err)
	}
	if len(entities) != len(grid.Entities()) {
		t.Errorf("expected %d entities, got %d", len(grid.Entities()), len(entities))
	}
	found := false
	for _, e := range entities {
		if e.Name == "assembling-machine-2" && e.Recipe == "iron-gear-wheel" {
			found = true
		}
	}
	if !found {
		t.Error("expected the assembler's recipe to survive the round trip")
	}
}

func TestDecodeBlueprintRejectsBadPrefix(t *testing.T) {
	if _, err := DecodeBlueprint("garbage"); err == nil {
		t.Error("expected an error for a blueprint string with an unrecognized version prefix")
	}
}
