package render

import (
	"bytes"
	"fmt"

	svgo "github.com/ajstarks/svgo"

	"github.com/dshills/busforge/pkg/pcb"
)

// SVGOptions configures SVG export, grounded in the teacher's SVGOptions for
// dungeon graphs but cut down to what a tile grid actually needs.
type SVGOptions struct {
	TilePixels int // pixel size of one grid tile; default 24
	Margin     int // canvas margin in pixels; default 20
	ShowGrid   bool
}

// DefaultSVGOptions returns sensible defaults.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{TilePixels: 24, Margin: 20, ShowGrid: true}
}

var entityFill = map[string]string{
	"assembler":   "#e07b39",
	"furnace":     "#c0392b",
	"inserter":    "#2e86c1",
	"belt":        "#7d7d7d",
	"underground": "#34495e",
	"splitter":    "#8e44ad",
	"pole":        "#f1c40f",
	"pipe":        "#1abc9c",
	"marker":      "#95a5a6",
}

// SVG renders grid's entities as an SVG document, grounded on the teacher's
// pkg/export/svg.go: a canvas sized to the grid's bounding box, a background
// rect, then one shape per entity colored by kind.
func SVG(grid pcb.Pcb, opts SVGOptions) []byte {
	if opts.TilePixels <= 0 {
		opts.TilePixels = 24
	}
	if opts.Margin <= 0 {
		opts.Margin = 20
	}

	bound := grid.EntityRect()
	tile := opts.TilePixels
	width := (bound.B.X-bound.A.X)*tile + 2*opts.Margin
	height := (bound.B.Y-bound.A.Y)*tile + 2*opts.Margin
	if width <= 0 {
		width = opts.Margin * 2
	}
	if height <= 0 {
		height = opts.Margin * 2
	}

	buf := new(bytes.Buffer)
	canvas := svgo.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#101010")

	toPixel := func(x, y int) (int, int) {
		return (x-bound.A.X)*tile + opts.Margin, (y-bound.A.Y)*tile + opts.Margin
	}

	if opts.ShowGrid {
		drawGridLines(canvas, bound, tile, opts.Margin, width, height)
	}

	for _, e := range grid.Entities() {
		px, py := toPixel(e.Location.X, e.Location.Y)
		sz := e.Function.Size()
		w, h := sz.X*tile, sz.Y*tile
		kind, label := classify(e.Function)
		canvas.Rect(px, py, w, h, fmt.Sprintf("fill:%s;stroke:#000;stroke-width:1", entityFill[kind]))
		if label != "" {
			canvas.Text(px+w/2, py+h/2+4, label, "text-anchor:middle;font-size:12px;fill:#fff")
		}
	}

	canvas.End()
	return buf.Bytes()
}

func drawGridLines(canvas *svgo.SVG, bound pcb.Rect, tile, margin, width, height int) {
	for x := bound.A.X; x <= bound.B.X; x++ {
		px := (x-bound.A.X)*tile + margin
		canvas.Line(px, margin, px, height-margin, "stroke:#2a2a2a;stroke-width:1")
	}
	for y := bound.A.Y; y <= bound.B.Y; y++ {
		py := (y-bound.A.Y)*tile + margin
		canvas.Line(margin, py, width-margin, py, "stroke:#2a2a2a;stroke-width:1")
	}
}

func classify(fn pcb.Function) (kind, label string) {
	switch f := fn.(type) {
	case pcb.Assembler:
		return "assembler", f.Recipe
	case pcb.Furnace:
		return "furnace", ""
	case pcb.Inserter:
		return "inserter", ""
	case pcb.Belt:
		return "belt", ""
	case pcb.UndergroundBelt:
		return "underground", ""
	case pcb.Splitter:
		return "splitter", ""
	case pcb.ElectricPole:
		return "pole", ""
	case pcb.Pipe:
		return "pipe", f.Fluid
	case pcb.UndergroundPipe:
		return "underground", ""
	case pcb.InputMarker:
		return "marker", f.Item
	default:
		return "marker", ""
	}
}
