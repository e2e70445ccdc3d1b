package pcb

import "testing"

func backends() map[string]func() Pcb {
	return map[string]func() Pcb{
		"sparse": func() Pcb { return NewSparsePcb() },
		"dense":  func() Pcb { return NewDensePcb() },
	}
}

func TestAddEntityAtIsBlocked(t *testing.T) {
	for name, ctor := range backends() {
		t.Run(name, func(t *testing.T) {
			p := ctor()
			p.Add(Entity{Location: Point{X: 2, Y: 3}, Function: Belt{Dir: Right}})
			if !p.IsBlocked(Point{X: 2, Y: 3}) {
				t.Fatal("expected tile blocked")
			}
			got, ok := p.EntityAt(Point{X: 2, Y: 3})
			if !ok || got.Function.(Belt).Dir != Right {
				t.Fatalf("EntityAt mismatch: %+v %v", got, ok)
			}
			if p.IsBlocked(Point{X: 0, Y: 0}) {
				t.Fatal("unrelated tile should be free")
			}
		})
	}
}

func TestAddPanicsOnOverlap(t *testing.T) {
	for name, ctor := range backends() {
		t.Run(name, func(t *testing.T) {
			p := ctor()
			p.Add(Entity{Location: Point{X: 0, Y: 0}, Function: Assembler{Recipe: "x"}})
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic on overlap")
				}
			}()
			p.Add(Entity{Location: Point{X: 1, Y: 1}, Function: Belt{Dir: Up}})
		})
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	for name, ctor := range backends() {
		t.Run(name, func(t *testing.T) {
			p := ctor()
			p.Add(Entity{Location: Point{X: 5, Y: 5}, Function: Belt{Dir: Down}})
			p.RemoveAt(Point{X: 5, Y: 5})
			p.RemoveAt(Point{X: 5, Y: 5})
			if p.IsBlocked(Point{X: 5, Y: 5}) {
				t.Fatal("tile should be free after removal")
			}
			if len(p.Entities()) != 0 {
				t.Fatal("expected no entities")
			}
		})
	}
}

func TestEntityRectGrowsAcrossFarPlacements(t *testing.T) {
	for name, ctor := range backends() {
		t.Run(name, func(t *testing.T) {
			p := ctor()
			p.Add(Entity{Location: Point{X: -20, Y: -20}, Function: Belt{Dir: Up}})
			p.Add(Entity{Location: Point{X: 30, Y: 15}, Function: Belt{Dir: Up}})
			r := p.EntityRect()
			if r.A.X > -20 || r.A.Y > -20 || r.B.X < 31 || r.B.Y < 16 {
				t.Fatalf("unexpected rect %+v", r)
			}
		})
	}
}

func TestReplaceOverwrites(t *testing.T) {
	for name, ctor := range backends() {
		t.Run(name, func(t *testing.T) {
			p := ctor()
			p.Add(Entity{Location: Point{X: 1, Y: 1}, Function: InputMarker{Item: "x"}})
			p.Replace(Entity{Location: Point{X: 1, Y: 1}, Function: Belt{Dir: Left}})
			got, ok := p.EntityAt(Point{X: 1, Y: 1})
			if !ok {
				t.Fatal("expected entity present")
			}
			if _, isBelt := got.Function.(Belt); !isBelt {
				t.Fatalf("expected Belt after replace, got %#v", got.Function)
			}
			if len(p.Entities()) != 1 {
				t.Fatalf("expected exactly 1 entity, got %d", len(p.Entities()))
			}
		})
	}
}
