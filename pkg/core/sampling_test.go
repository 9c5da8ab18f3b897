package core

import (
	"math"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 10000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D returned %f outside [0, 1)", v)
		}
	}
}

func TestRandomSampler_SeededIsDeterministic(t *testing.T) {
	a := NewSeededSampler(7)
	b := NewSeededSampler(7)

	for i := 0; i < 100; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatalf("Samplers with equal seeds diverged at sample %d", i)
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() > 1.0 {
			t.Fatalf("Point %v lies outside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)

	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-12 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
		sum = sum.Add(v)
	}

	// Uniform directions average out to roughly zero
	mean := sum.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the XY plane, got %v", p)
		}
		if p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v lies outside the unit disk", p)
		}
	}
}

func TestRandomVec3_Bounds(t *testing.T) {
	sampler := NewSeededSampler(3)

	for i := 0; i < 1000; i++ {
		v := RandomVec3(sampler, 0.5, 1.0)
		for axis := 0; axis < 3; axis++ {
			c := v.Axis(axis)
			if c < 0.5 || c >= 1.0 {
				t.Fatalf("Component %f outside [0.5, 1.0)", c)
			}
		}
	}
}
