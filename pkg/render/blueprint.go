package render

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dshills/busforge/pkg/pcb"
)

// blueprintEntity is the JSON shape one placed entity serializes to. It is a
// simplified stand-in for the real game's blueprint entity record (which
// carries dozens of optional fields the original encoded via the
// factorio-blueprint crate, unavailable in the Go ecosystem): enough fields
// to round-trip every pcb.Function this module places.
type blueprintEntity struct {
	Number      int    `json:"entity_number"`
	Name        string `json:"name"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Direction   int    `json:"direction,omitempty"`
	Recipe      string `json:"recipe,omitempty"`
	Fluid       string `json:"fluid,omitempty"`
	LongHanded  bool   `json:"long_handed,omitempty"`
	IsEntry     bool   `json:"is_entry,omitempty"`
	Underground bool   `json:"underground,omitempty"`
}

type blueprintDoc struct {
	Item     string            `json:"item"`
	Label    string            `json:"label"`
	Entities []blueprintEntity `json:"entities"`
}

// directionCode maps pcb.Direction to the game's 0/2/4/6 clock-position
// encoding, per the original's render.rs direction table.
func directionCode(d pcb.Direction) int {
	switch d {
	case pcb.Up:
		return 0
	case pcb.Right:
		return 2
	case pcb.Down:
		return 4
	default:
		return 6
	}
}

// Blueprint serializes grid's entities to a blueprint string: JSON, gzipped,
// then base64-encoded. This is a simplified stand-in for the game's real
// base64+zlib+JSON blueprint format (see DESIGN.md).
func Blueprint(grid pcb.Pcb) (string, error) {
	doc := blueprintDoc{Item: "blueprint", Label: "busforge"}
	for i, e := range grid.Entities() {
		be := blueprintEntity{Number: i + 1, X: e.Location.X, Y: e.Location.Y}
		switch f := e.Function.(type) {
		case pcb.Assembler:
			be.Name = "assembling-machine-2"
			be.Recipe = f.Recipe
		case pcb.Furnace:
			be.Name = "electric-furnace"
		case pcb.Inserter:
			be.Name = "inserter"
			switch f.Kind {
			case pcb.InserterFast:
				be.Name = "fast-inserter"
			case pcb.InserterStack:
				be.Name = "stack-inserter"
			}
			be.LongHanded = f.Kind == pcb.InserterLongHanded
			be.Direction = directionCode(f.Orientation)
		case pcb.Belt:
			be.Name = "transport-belt"
			be.Direction = directionCode(f.Dir)
		case pcb.UndergroundBelt:
			be.Name = "underground-belt"
			be.Direction = directionCode(f.Dir)
			be.Underground = true
			be.IsEntry = f.IsEntry
		case pcb.Splitter:
			be.Name = "splitter"
			be.Direction = directionCode(f.Dir)
		case pcb.ElectricPole:
			be.Name = "medium-electric-pole"
		case pcb.Pipe:
			be.Name = "pipe"
			be.Fluid = f.Fluid
		case pcb.UndergroundPipe:
			be.Name = "pipe-to-ground"
			be.Direction = directionCode(f.Dir)
			be.Underground = true
		case pcb.InputMarker:
			be.Name = "input-marker"
			be.Fluid = f.Item
		default:
			return "", fmt.Errorf("render: unknown entity function %T at %v", e.Function, e.Location)
		}
		doc.Entities = append(doc.Entities, be)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render: marshal blueprint: %w", err)
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("render: compress blueprint: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("render: compress blueprint: %w", err)
	}

	return "0" + base64.StdEncoding.EncodeToString(gz.Bytes()), nil
}

// DecodeBlueprint reverses Blueprint, returning the decoded entity records.
// It does not reconstruct a pcb.Pcb, so callers needing the round-trip
// invariant in spec §8 scenario 1 compare the decoded records, not a
// rebuilt grid.
func DecodeBlueprint(s string) ([]blueprintEntity, error) {
	if len(s) == 0 || s[0] != '0' {
		return nil, fmt.Errorf("render: unsupported blueprint version prefix")
	}
	raw, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("render: decode base64: %w", err)
	}
	r, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("render: decompress blueprint: %w", err)
	}
	defer r.Close()
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("render: decompress blueprint: %w", err)
	}

	var doc blueprintDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("render: unmarshal blueprint: %w", err)
	}
	return doc.Entities, nil
}
