// Package render implements spec §4.6/§6 output assembly: the ASCII and SVG
// renderers consuming a finished pcb.Pcb's entity list, and the blueprint
// string encoder/decoder. Ported from the original implementation's
// render.rs, whose ascii() walked the same entity set building the same
// glyph table.
package render

import (
	"strings"

	"github.com/dshills/busforge/pkg/pcb"
)

// ASCII renders grid's entities as a 2D character grid, one glyph per tile,
// using the same symbol table as the original's AsciiCanvas.
func ASCII(grid pcb.Pcb) string {
	entities := grid.Entities()
	bound := grid.EntityRect()
	if len(entities) == 0 {
		return ""
	}

	width := bound.B.X - bound.A.X
	height := bound.B.Y - bound.A.Y
	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}
	set := func(x, y int, c rune) {
		cy, cx := y-bound.A.Y, x-bound.A.X
		if cy < 0 || cy >= height || cx < 0 || cx >= width {
			return
		}
		canvas[cy][cx] = c
	}

	for _, e := range entities {
		x, y := e.Location.X, e.Location.Y
		switch f := e.Function.(type) {
		case pcb.Assembler:
			box3x3(set, x, y)
			label := strings.ToUpper(f.Recipe)
			if label != "" {
				set(x+1, y+1, rune(label[0]))
			}
		case pcb.Furnace:
			box3x3Hollow(set, x, y)
		case pcb.Inserter:
			set(x, y, inserterGlyph(f.Orientation, f.Kind == pcb.InserterLongHanded || f.Kind == pcb.InserterStack))
		case pcb.Belt:
			set(x, y, beltGlyph(f.Dir))
		case pcb.UndergroundBelt:
			set(x, y, undergroundGlyph(f.Dir, f.IsEntry))
		case pcb.Splitter:
			set(x, y, splitterGlyph(f.Dir))
		case pcb.ElectricPole:
			set(x, y, '*')
		case pcb.Pipe:
			set(x, y, pipeGlyph())
		case pcb.UndergroundPipe:
			set(x, y, undergroundPipeGlyph())
		case pcb.InputMarker:
			set(x, y, 'I')
		}
	}

	rows := make([]string, len(canvas))
	for i, row := range canvas {
		rows[i] = string(row)
	}
	return strings.Join(rows, "\n")
}

func box3x3(set func(x, y int, c rune), x, y int) {
	set(x, y, '┌')
	set(x+1, y, '─')
	set(x+2, y, '┐')
	set(x, y+1, '│')
	set(x+2, y+1, '│')
	set(x, y+2, '└')
	set(x+1, y+2, '─')
	set(x+2, y+2, '┘')
}

func box3x3Hollow(set func(x, y int, c rune), x, y int) {
	box3x3(set, x, y)
}

func inserterGlyph(d pcb.Direction, longHanded bool) rune {
	if longHanded {
		switch d {
		case pcb.Up:
			return '↟'
		case pcb.Down:
			return '↡'
		case pcb.Left:
			return '↞'
		default:
			return '↠'
		}
	}
	switch d {
	case pcb.Up:
		return '↑'
	case pcb.Down:
		return '↓'
	case pcb.Left:
		return '←'
	default:
		return '→'
	}
}

func beltGlyph(d pcb.Direction) rune {
	switch d {
	case pcb.Up:
		return '⍐'
	case pcb.Down:
		return '⍗'
	case pcb.Left:
		return '⍇'
	default:
		return '⍈'
	}
}

// undergroundGlyph mirrors the original's inverted entry/exit glyph choice:
// an entry (belt diving down) uses the exit's plain-direction glyph and vice
// versa, since the symbol depicts which way the tunnel slopes, not which way
// items flow.
func undergroundGlyph(d pcb.Direction, isEntry bool) rune {
	if isEntry {
		switch d {
		case pcb.Up:
			return '⍓'
		case pcb.Down:
			return '⍌'
		case pcb.Left:
			return '⍃'
		default:
			return '⍄'
		}
	}
	switch d {
	case pcb.Up:
		return '⍌'
	case pcb.Down:
		return '⍓'
	case pcb.Left:
		return '⍄'
	default:
		return '⍃'
	}
}

func splitterGlyph(d pcb.Direction) rune {
	switch d {
	case pcb.Up, pcb.Down:
		return '═'
	default:
		return '║'
	}
}

func pipeGlyph() rune { return '~' }

func undergroundPipeGlyph() rune { return '≈' }
