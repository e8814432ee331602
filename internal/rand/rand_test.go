package rand

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint32() == b.Uint32() {
			same++
		}
	}
	if same == 100 {
		t.Fatalf("seeds 1 and 2 produced identical streams")
	}
}

func TestIntnBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d out of range", v)
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := New(3)
	seenLo, seenHi := false, false
	for i := 0; i < 10000; i++ {
		v := r.IntRange(4, 10)
		if v < 4 || v > 10 {
			t.Fatalf("IntRange(4,10) = %d out of range", v)
		}
		if v == 4 {
			seenLo = true
		}
		if v == 10 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Fatalf("IntRange never hit a bound: lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestFloatRangeBounds(t *testing.T) {
	r := New(9)
	for i := 0; i < 1000; i++ {
		v := r.FloatRange(0.5, 2.5)
		if v < 0.5 || v > 2.5 {
			t.Fatalf("FloatRange(0.5,2.5) = %f out of range", v)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	a := New(11)
	for i := 0; i < 10; i++ {
		a.Uint32()
	}
	b := &Rand{PCG32: a.PCG32}
	for i := 0; i < 50; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("copied state diverged at draw %d", i)
		}
	}
}
