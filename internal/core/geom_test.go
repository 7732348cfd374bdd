package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"last column", 5, 7, true},
		{"right edge is exclusive", 6, 5, false},
		{"bottom edge is exclusive", 4, 8, false},
		{"left of rect", 1, 5, false},
		{"above rect", 4, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-20.5, -20, 20, -20},
		{25.1, -25, 25, 25},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{370, 10},
		{-5, 355},
		{-725, 355},
		{math.Copysign(0, -1), 0},
	}

	for _, tc := range tests {
		got := WrapDegrees(tc.in)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, expected %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("WrapDegrees(%v) = %v, outside [0, 360)", tc.in, got)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 7) != 7 || Max(7, 3) != 7 || Max(-1, -1) != -1 {
		t.Error("Max returned the wrong value")
	}
}
