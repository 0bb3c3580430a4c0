package world

import (
	"math"
	"testing"
)

func TestNoise2Range(t *testing.T) {
	n := NewNoiseField(42)
	for i := -200; i <= 200; i++ {
		for j := -20; j <= 20; j++ {
			v := n.Noise2(float64(i)*0.37, float64(j)*1.13)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Noise2(%d,%d) = %v outside [0,1]", i, j, v)
			}
		}
	}
}

func TestNoise2Deterministic(t *testing.T) {
	a := NewNoiseField(7)
	b := NewNoiseField(7)
	for i := range 100 {
		x, y := float64(i)*0.71, float64(i)*-0.33
		if a.Noise2(x, y) != b.Noise2(x, y) {
			t.Fatalf("same seed disagrees at (%v,%v)", x, y)
		}
	}
}

func TestNoiseSeedsDiffer(t *testing.T) {
	a := NewNoiseField(1)
	b := NewNoiseField(2)
	same := 0
	for i := range 100 {
		x, y := float64(i)*0.53+0.1, float64(i)*0.29+0.2
		if a.Noise2(x, y) == b.Noise2(x, y) {
			same++
		}
	}
	if same == 100 {
		t.Error("different seeds produced identical fields")
	}
}

func TestNoise3IsPairwiseMean(t *testing.T) {
	n := NewNoiseField(99)
	x, y, z, off := 1.25, 3.5, -2.75, 1000.0
	want := (n.Noise2(x+off, y+off) + n.Noise2(x+off, z+off) + n.Noise2(y+off, z+off) +
		n.Noise2(y+off, x+off) + n.Noise2(z+off, x+off) + n.Noise2(z+off, y+off)) / 6
	if got := n.Noise3(x, y, z, off); math.Abs(got-want) > 1e-12 {
		t.Errorf("Noise3 = %v, want %v", got, want)
	}
}

func TestChunkRNG(t *testing.T) {
	a := newChunkRNG(42, 16, -32, treeSalt)
	b := newChunkRNG(42, 16, -32, treeSalt)
	for range 1000 {
		fa, fb := a.float64(), b.float64()
		if fa != fb {
			t.Fatal("rng streams diverged")
		}
		if fa < 0 || fa >= 1 {
			t.Fatalf("float64() = %v outside [0,1)", fa)
		}
		if n := a.intN(3); n < 0 || n >= 3 {
			t.Fatalf("intN(3) = %d", n)
		}
		b.intN(3)
	}
}
