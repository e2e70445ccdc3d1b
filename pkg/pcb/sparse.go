package pcb

// SparsePcb stores entities in a hashmap keyed by tile, ported from the
// original implementation's FnvHashMap-backed HashmapPcb. It is the right
// choice when the grid is large and sparsely populated, which is the common
// case for a factory floor plan.
type SparsePcb struct {
	index    map[Point]int
	entities []*Entity
}

// NewSparsePcb returns an empty SparsePcb.
func NewSparsePcb() *SparsePcb {
	return &SparsePcb{index: make(map[Point]int)}
}

func (p *SparsePcb) tiles(e Entity) []Point {
	r := e.Rect()
	var out []Point
	for y := r.A.Y; y < r.B.Y; y++ {
		for x := r.A.X; x < r.B.X; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

func (p *SparsePcb) Add(e Entity) {
	addPanicOnOverlap(p.Entities(), e)
	idx := len(p.entities)
	p.entities = append(p.entities, &e)
	for _, t := range p.tiles(e) {
		p.index[t] = idx
	}
}

func (p *SparsePcb) Replace(e Entity) {
	p.RemoveAt(e.Location)
	p.Add(e)
}

func (p *SparsePcb) RemoveAt(loc Point) {
	idx, ok := p.index[loc]
	if !ok {
		return
	}
	ex := p.entities[idx]
	if ex == nil {
		return
	}
	for _, t := range p.tiles(*ex) {
		delete(p.index, t)
	}
	p.entities[idx] = nil
}

func (p *SparsePcb) EntityAt(loc Point) (Entity, bool) {
	idx, ok := p.index[loc]
	if !ok || p.entities[idx] == nil {
		return Entity{}, false
	}
	return *p.entities[idx], true
}

func (p *SparsePcb) IsBlocked(loc Point) bool {
	_, ok := p.EntityAt(loc)
	return ok
}

func (p *SparsePcb) Entities() []Entity {
	out := make([]Entity, 0, len(p.entities))
	for _, e := range p.entities {
		if e != nil {
			out = append(out, *e)
		}
	}
	return out
}

func (p *SparsePcb) EntityRect() Rect {
	return boundingBox(p.Entities())
}

func (p *SparsePcb) Clone() Pcb {
	cp := NewSparsePcb()
	for _, e := range p.Entities() {
		cp.Add(e)
	}
	return cp
}
