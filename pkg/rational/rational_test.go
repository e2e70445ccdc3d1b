package rational

import "testing"

func TestReduce(t *testing.T) {
	cases := []struct {
		num, den     int32
		wantN, wantD int32
	}{
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{0, 5, 0, 1},
		{6, 3, 2, 1},
	}
	for _, c := range cases {
		r := New(c.num, c.den)
		if r.Num() != c.wantN || r.Den() != c.wantD {
			t.Errorf("New(%d,%d) = %d/%d, want %d/%d", c.num, c.den, r.Num(), r.Den(), c.wantN, c.wantD)
		}
	}
}

func TestArith(t *testing.T) {
	half := New(1, 2)
	third := New(1, 3)
	if got := half.Add(third); got.Cmp(New(5, 6)) != 0 {
		t.Errorf("1/2+1/3 = %v, want 5/6", got)
	}
	if got := half.Mul(third); got.Cmp(New(1, 6)) != 0 {
		t.Errorf("1/2*1/3 = %v, want 1/6", got)
	}
	if got, err := half.Div(third); err != nil || got.Cmp(New(3, 2)) != 0 {
		t.Errorf("1/2 / 1/3 = %v,%v want 3/2", got, err)
	}
	if _, err := half.Div(Zero); err != ErrDivideByZero {
		t.Errorf("expected ErrDivideByZero, got %v", err)
	}
}

func TestFloorCeil(t *testing.T) {
	if New(7, 2).Floor() != 3 {
		t.Errorf("floor(7/2) != 3")
	}
	if New(7, 2).Ceil() != 4 {
		t.Errorf("ceil(7/2) != 4")
	}
	if New(-7, 2).Floor() != -4 {
		t.Errorf("floor(-7/2) != -4")
	}
}

func TestNewPanicsOnZeroDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(1, 0)
}
