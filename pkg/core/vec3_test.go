package core

import (
	"math"
	"math/rand"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_Normalize(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := NewVec3(random.Float64()*200-100, random.Float64()*200-100, random.Float64()*200-100)
		if v.Length() == 0 {
			continue
		}

		n := v.Normalize()
		if math.Abs(n.Length()-1.0) > 1e-12 {
			t.Fatalf("Normalize(%v) has length %f, expected 1", v, n.Length())
		}

		// Parallel: cross product vanishes and direction is preserved
		if n.Cross(v).Length() > 1e-9*v.Length() {
			t.Fatalf("Normalize(%v) = %v is not parallel to input", v, n)
		}
		if n.Dot(v) <= 0 {
			t.Fatalf("Normalize(%v) = %v points the wrong way", v, n)
		}
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	zero := NewVec3(0, 0, 0)
	if !zero.Normalize().Equals(zero) {
		t.Errorf("Expected zero vector to normalize to itself, got %v", zero.Normalize())
	}
}

func TestVec3_ReflectInvolution(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		normal Vec3
	}{
		{"Straight down onto floor", NewVec3(0, -1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(0, 1, 0)},
		{"Arbitrary", NewVec3(0.3, -2.5, 7), NewVec3(1, 2, 3).Normalize()},
		{"Grazing", NewVec3(1, 0, 0), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			twice := tt.v.Reflect(tt.normal).Reflect(tt.normal)
			if !vecApproxEqual(twice, tt.v, 1e-12) {
				t.Errorf("Expected reflecting twice to return %v, got %v", tt.v, twice)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	expected := NewVec3(1, 1, 0)

	if got := v.Reflect(n); !vecApproxEqual(got, expected, 1e-12) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("Unit ratio does not bend", func(t *testing.T) {
		in := NewVec3(1, -1, 0.5).Normalize()
		out := in.Refract(n, 1.0)
		if !vecApproxEqual(out, in, 1e-12) {
			t.Errorf("Expected %v, got %v", in, out)
		}
	})

	t.Run("Normal incidence passes straight through", func(t *testing.T) {
		in := NewVec3(0, -1, 0)
		out := in.Refract(n, 1.0/1.5)
		if !vecApproxEqual(out, in, 1e-12) {
			t.Errorf("Expected %v, got %v", in, out)
		}
	})

	t.Run("Snell's law", func(t *testing.T) {
		eta := 1.0 / 1.5
		in := NewVec3(1, -1, 0).Normalize()
		out := in.Refract(n, eta)

		sinIn := math.Abs(in.X)
		sinOut := math.Abs(out.X) / out.Length()
		if math.Abs(sinOut-eta*sinIn) > 1e-12 {
			t.Errorf("Expected sin(out)=%f, got %f", eta*sinIn, sinOut)
		}
		if math.Abs(out.Length()-1.0) > 1e-12 {
			t.Errorf("Expected unit refracted direction, got length %f", out.Length())
		}
		if out.Y >= 0 {
			t.Errorf("Refracted ray should continue below the surface, got %v", out)
		}
	})
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"Zero", NewVec3(0, 0, 0), true},
		{"Tiny", NewVec3(1e-9, -1e-9, 0), true},
		{"One component large", NewVec3(1e-9, 1e-7, 0), false},
		{"Unit", NewVec3(1, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); !got.Equals(NewVec3(5, 7, 9)) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Subtract(a); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.MultiplyVec(b); !got.Equals(NewVec3(4, 10, 18)) {
		t.Errorf("MultiplyVec: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f", got)
	}
	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); !got.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Cross: got %v", got)
	}
	if got := a.Negate(); !got.Equals(NewVec3(-1, -2, -3)) {
		t.Errorf("Negate: got %v", got)
	}
	if got := a.LengthSquared(); got != 14 {
		t.Errorf("LengthSquared: got %f", got)
	}
	if got := NewVec3(2, 4, 6).Divide(2); !got.Equals(a) {
		t.Errorf("Divide: got %v", got)
	}
}

func TestVec3_Lerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	sky := NewVec3(0.5, 0.7, 1.0)

	if got := white.Lerp(sky, 0); !got.Equals(white) {
		t.Errorf("Lerp t=0: got %v", got)
	}
	if got := white.Lerp(sky, 1); !vecApproxEqual(got, sky, 1e-15) {
		t.Errorf("Lerp t=1: got %v", got)
	}
	if got := white.Lerp(sky, 0.5); !vecApproxEqual(got, NewVec3(0.75, 0.85, 1.0), 1e-15) {
		t.Errorf("Lerp t=0.5: got %v", got)
	}
}
