package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -5))

	if !ray.Direction.Equals(NewVec3(0, 0, -1)) {
		t.Errorf("Expected direction (0, 0, -1), got %v", ray.Direction)
	}
	if got := ray.At(2); !got.Equals(NewVec3(1, 2, 1)) {
		t.Errorf("Expected At(2) = (1, 2, 1), got %v", got)
	}
}

func TestNewRay_InverseDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0.5, 0))
	inv := ray.InvDirection()

	if !math.IsInf(inv.X, 1) {
		t.Errorf("Expected +Inf for zero X component, got %f", inv.X)
	}
	if inv.Y != 1 {
		t.Errorf("Expected inverse Y of 1, got %f", inv.Y)
	}

	negative := NewRay(NewVec3(0, 0, 0), NewVec3(-1, 0, 0))
	if negative.InvDirection().X != -1 {
		t.Errorf("Expected inverse X of -1, got %f", negative.InvDirection().X)
	}
}
