package core

import "testing"

func TestAABBIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		expected bool
	}{
		{
			name:     "overlap on x within player width",
			a:        NewAABB(0, 0, 50, 50),
			b:        NewAABB(60, 0, 20, 20),
			expected: true,
		},
		{
			name:     "gap on x axis",
			a:        NewAABB(0, 0, 50, 50),
			b:        NewAABB(100, 0, 20, 20),
			expected: false,
		},
		{
			name:     "gap on y axis",
			a:        NewAABB(0, 0, 50, 50),
			b:        NewAABB(0, -100, 20, 20),
			expected: false,
		},
		{
			name:     "overlap on x only",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(5, 50, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewAABB(0, 0, 10, 10),
			b:        NewAABB(20, 0, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewAABB(0, 0, 100, 100),
			b:        NewAABB(10, -10, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestAABBCorners(t *testing.T) {
	b := NewAABB(60, 0, 20, 20)

	if got := b.Min(); got != (Vec2{40, -20}) {
		t.Errorf("Min() = %v, expected {40 -20}", got)
	}
	if got := b.Max(); got != (Vec2{80, 20}) {
		t.Errorf("Max() = %v, expected {80 20}", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float32
	}{
		{10, 20, 0, 10},
		{10, 20, 0.5, 15},
		{10, 20, 1, 20},
		{-5, 5, 0.25, -2.5},
	}

	for _, tc := range tests {
		result := Lerp(tc.a, tc.b, tc.t)
		if result != tc.expected {
			t.Errorf("Lerp(%f, %f, %f) = %f, expected %f", tc.a, tc.b, tc.t, result, tc.expected)
		}
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

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
