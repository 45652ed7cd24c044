package vmath

import "testing"

func TestMulBasic(t *testing.T) {
	a := FromInt(3)
	b := FromInt(4)
	if got := Mul(a, b); got != FromInt(12) {
		t.Errorf("Expected 12, got %v", ToFloat(got))
	}
}

func TestMulFraction(t *testing.T) {
	a := FromFloat(2.5)
	b := FromFloat(0.5)
	got := ToFloat(Mul(a, b))
	if got < 1.2499 || got > 1.2501 {
		t.Errorf("Expected 1.25, got %v", got)
	}
}

func TestMulNegative(t *testing.T) {
	if got := Mul(FromInt(-3), FromInt(4)); got != FromInt(-12) {
		t.Errorf("Expected -12, got %v", ToFloat(got))
	}
	if got := Mul(FromInt(-3), FromInt(-4)); got != FromInt(12) {
		t.Errorf("Expected 12, got %v", ToFloat(got))
	}
}

func TestDivBasic(t *testing.T) {
	if got := Div(FromInt(12), FromInt(4)); got != FromInt(3) {
		t.Errorf("Expected 3, got %v", ToFloat(got))
	}
}

func TestDivByZero(t *testing.T) {
	if got := Div(FromInt(10), 0); got != 0 {
		t.Errorf("Expected 0 for division by zero, got %v", got)
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{4, 2},
		{9, 3},
		{2, 1.41421},
		{0.25, 0.5},
	}
	for _, c := range cases {
		got := ToFloat(Sqrt(FromFloat(c.in)))
		if got < c.want-0.001 || got > c.want+0.001 {
			t.Errorf("Sqrt(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	lo, hi := FromInt(1), FromInt(10)
	if got := Clamp(FromInt(15), lo, hi); got != hi {
		t.Errorf("Expected clamp to hi")
	}
	if got := Clamp(FromInt(-5), lo, hi); got != lo {
		t.Errorf("Expected clamp to lo")
	}
	if got := Clamp(FromInt(5), lo, hi); got != FromInt(5) {
		t.Errorf("Expected passthrough")
	}
}

func TestNormalize2DUnitLength(t *testing.T) {
	nx, ny := Normalize2D(FromInt(3), FromInt(4))
	mag := ToFloat(Magnitude(nx, ny))
	if mag < 0.99 || mag > 1.01 {
		t.Errorf("Expected unit magnitude, got %v", mag)
	}
}

func TestNormalize2DZero(t *testing.T) {
	nx, ny := Normalize2D(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector to stay zero, got %v,%v", nx, ny)
	}
}

func TestNormalizeExact(t *testing.T) {
	nx, ny := NormalizeExact(FromInt(3), FromInt(4))
	if x := ToFloat(nx); x < 0.595 || x > 0.605 {
		t.Errorf("Expected x component 0.6, got %v", x)
	}
	if y := ToFloat(ny); y < 0.795 || y > 0.805 {
		t.Errorf("Expected y component 0.8, got %v", y)
	}

	nx, ny = NormalizeExact(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Expected zero vector to stay zero, got %v,%v", nx, ny)
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

func TestFastRandSeedZero(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Errorf("Expected nonzero output from zero seed")
	}
}

func TestFastRandIntnBounds(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn out of range: %d", v)
		}
	}
}

func TestFixedRange(t *testing.T) {
	r := NewFastRand(3)
	lo, hi := FromInt(5), FromInt(15)
	for i := 0; i < 1000; i++ {
		v := r.FixedRange(lo, hi)
		if v < lo || v > hi {
			t.Fatalf("FixedRange out of bounds: %v", ToFloat(v))
		}
	}
}
