package trail

import "testing"

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := 0; i < 100; i++ {
		if x, y := a.NextU64(), b.NextU64(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if NewRand(7).NextU64() == NewRand(8).NextU64() {
		t.Error("neighbouring seeds produced the same first value")
	}
}

func TestRandZeroSeed(t *testing.T) {
	r := NewRand(0)
	if r.NextU64() == 0 && r.NextU64() == 0 {
		t.Error("zero seed produced a stuck stream")
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 = %v", f)
		}
		if f := r.RangeF(10, 30); f < 10 || f >= 30 {
			t.Fatalf("RangeF = %v", f)
		}
		if f := r.Jitter(5); f < -5 || f >= 5 {
			t.Fatalf("Jitter = %v", f)
		}
		if n := r.Intn(4); n < 0 || n >= 4 {
			t.Fatalf("Intn = %d", n)
		}
	}
	if r.Intn(0) != 0 || r.RangeF(2, 2) != 2 || r.Jitter(0) != 0 {
		t.Error("degenerate ranges")
	}
}

func TestRoundHalfAway(t *testing.T) {
	tests := map[float64]int{12.4: 12, 12.5: 13, -0.5: -1, 0: 0}
	for in, want := range tests {
		if got := roundHalfAway(in); got != want {
			t.Errorf("roundHalfAway(%v) = %d, want %d", in, got, want)
		}
	}
}
