package common

import "testing"

func TestClampAndApproach(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp low", Clamp(-3, -1, 1), -1},
		{"clamp high", Clamp(3, -1, 1), 1},
		{"clamp inside", Clamp(0.5, -1, 1), 0.5},
		{"approach limited", Approach(0, 10, 2), 2},
		{"approach limited negative", Approach(0, -10, 2), -2},
		{"approach reaches", Approach(9, 10, 2), 10},
		{"lerp", Lerp(2, 4, 0.5), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestWorldToScreen(t *testing.T) {
	x, y := WorldToScreen(0, 0)
	if x != BaseWidth/2 || y != BaseHeight/2 {
		t.Fatalf("origin maps to (%v, %v)", x, y)
	}
	x, y = WorldToScreen(-FieldHalfWidth, FieldHalfHeight)
	if x != 0 || y != 0 {
		t.Fatalf("top-left maps to (%v, %v)", x, y)
	}
}
