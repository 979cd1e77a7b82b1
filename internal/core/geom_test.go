package core

import "testing"

func TestVecAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected Vec
	}{
		{"move right", Vec{6, 9}, Vec{1, 0}, Vec{7, 9}},
		{"move up", Vec{6, 9}, Vec{0, -1}, Vec{6, 8}},
		{"off the left edge", Vec{0, 3}, Vec{-1, 0}, Vec{-1, 3}},
		{"zero", Vec{4, 4}, Vec{}, Vec{4, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Add(tc.b)
			if result != tc.expected {
				t.Errorf("Add() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestVecNeg(t *testing.T) {
	if got := (Vec{1, 0}).Neg(); got != (Vec{-1, 0}) {
		t.Errorf("Neg() = %v, expected (-1, 0)", got)
	}
	if got := (Vec{0, -1}).Neg(); got != (Vec{0, 1}) {
		t.Errorf("Neg() = %v, expected (0, 1)", got)
	}
}

func TestVecString(t *testing.T) {
	if got := (Vec{-1, 20}).String(); got != "(-1, 20)" {
		t.Errorf("String() = %q, expected %q", got, "(-1, 20)")
	}
}

func TestContainsVec(t *testing.T) {
	cells := []Vec{{6, 9}, {5, 9}, {4, 9}}

	if !ContainsVec(cells, Vec{5, 9}) {
		t.Error("ContainsVec should find (5, 9)")
	}
	if ContainsVec(cells, Vec{9, 5}) {
		t.Error("ContainsVec should not find (9, 5)")
	}
	if ContainsVec(nil, Vec{0, 0}) {
		t.Error("ContainsVec on nil slice should be false")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
