package pcb

// DensePcb stores entities in a flat 2D array addressed through an origin
// offset, doubling and recentering whenever a placement falls outside the
// current bounds. Ported from the original implementation's GridPcb
// (ndarray-backed), it trades memory for cache-friendly access on grids that
// end up densely packed.
type DensePcb struct {
	origin   Point // grid[0][0] corresponds to this world coordinate
	width    int
	height   int
	grid     []int // 0 means empty, else 1+index into entities
	entities []*Entity
	rect     Rect
	rectSet  bool
}

// NewDensePcb returns an empty DensePcb with a small initial backing array.
func NewDensePcb() *DensePcb {
	const initial = 16
	return &DensePcb{
		origin: Point{X: -initial / 2, Y: -initial / 2},
		width:  initial,
		height: initial,
		grid:   make([]int, initial*initial),
	}
}

func (p *DensePcb) cellIndex(loc Point) (int, bool) {
	x := loc.X - p.origin.X
	y := loc.Y - p.origin.Y
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0, false
	}
	return y*p.width + x, true
}

// ensureCovers grows and recenters the backing array, doubling each
// dimension until rect fits, matching the original's resize_grid.
func (p *DensePcb) ensureCovers(r Rect) {
	for r.A.X < p.origin.X || r.A.Y < p.origin.Y ||
		r.B.X > p.origin.X+p.width || r.B.Y > p.origin.Y+p.height {
		newWidth := p.width * 2
		newHeight := p.height * 2
		newOrigin := Point{X: p.origin.X - p.width/2, Y: p.origin.Y - p.height/2}
		newGrid := make([]int, newWidth*newHeight)
		for y := 0; y < p.height; y++ {
			for x := 0; x < p.width; x++ {
				v := p.grid[y*p.width+x]
				if v == 0 {
					continue
				}
				worldX := p.origin.X + x
				worldY := p.origin.Y + y
				nx := worldX - newOrigin.X
				ny := worldY - newOrigin.Y
				newGrid[ny*newWidth+nx] = v
			}
		}
		p.origin = newOrigin
		p.width = newWidth
		p.height = newHeight
		p.grid = newGrid
	}
}

func (p *DensePcb) tiles(e Entity) []Point {
	r := e.Rect()
	var out []Point
	for y := r.A.Y; y < r.B.Y; y++ {
		for x := r.A.X; x < r.B.X; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

func (p *DensePcb) Add(e Entity) {
	addPanicOnOverlap(p.Entities(), e)
	p.ensureCovers(e.Rect())
	idx := len(p.entities)
	p.entities = append(p.entities, &e)
	for _, t := range p.tiles(e) {
		ci, ok := p.cellIndex(t)
		if !ok {
			panic("pcb: tile outside grid after ensureCovers")
		}
		p.grid[ci] = idx + 1
	}
	if p.rectSet {
		p.rect = p.rect.Union(e.Rect())
	} else {
		p.rect = e.Rect()
		p.rectSet = true
	}
}

func (p *DensePcb) Replace(e Entity) {
	p.RemoveAt(e.Location)
	p.Add(e)
}

func (p *DensePcb) RemoveAt(loc Point) {
	ci, ok := p.cellIndex(loc)
	if !ok || p.grid[ci] == 0 {
		return
	}
	idx := p.grid[ci] - 1
	ex := p.entities[idx]
	if ex == nil {
		return
	}
	for _, t := range p.tiles(*ex) {
		if tci, ok := p.cellIndex(t); ok {
			p.grid[tci] = 0
		}
	}
	p.entities[idx] = nil
	remaining := p.Entities()
	p.rect = boundingBox(remaining)
	p.rectSet = len(remaining) > 0
}

func (p *DensePcb) EntityAt(loc Point) (Entity, bool) {
	ci, ok := p.cellIndex(loc)
	if !ok || p.grid[ci] == 0 {
		return Entity{}, false
	}
	idx := p.grid[ci] - 1
	if p.entities[idx] == nil {
		return Entity{}, false
	}
	return *p.entities[idx], true
}

func (p *DensePcb) IsBlocked(loc Point) bool {
	_, ok := p.EntityAt(loc)
	return ok
}

func (p *DensePcb) Entities() []Entity {
	out := make([]Entity, 0, len(p.entities))
	for _, e := range p.entities {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

// EntityRect returns the bounding box of the current entities: Add grows it
// incrementally and RemoveAt recomputes it, so it matches SparsePcb's.
func (p *DensePcb) EntityRect() Rect {
	return p.rect
}

func (p *DensePcb) Clone() Pcb {
	cp := NewDensePcb()
	for _, e := range p.Entities() {
		cp.Add(e)
	}
	return cp
}
