package model

import "testing"

func TestLocation_ChebyshevDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want int32
	}{
		{"same cell", NewLocation(1, 5, 5), NewLocation(1, 5, 5), 0},
		{"diagonal", NewLocation(1, 5, 5), NewLocation(1, 8, 7), 3},
		{"negative delta", NewLocation(1, 5, 5), NewLocation(1, 1, 4), 4},
		{"other map", NewLocation(1, 5, 5), NewLocation(2, 5, 5), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.ChebyshevDistance(tt.b); got != tt.want {
				t.Errorf("ChebyshevDistance = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLocation_InSquare(t *testing.T) {
	center := NewLocation(1, 10, 10)

	if !center.InSquare(NewLocation(1, 13, 7), 3) {
		t.Error("corner of the square must be inside")
	}
	if center.InSquare(NewLocation(1, 14, 10), 3) {
		t.Error("cell outside radius reported inside")
	}
	if center.InSquare(NewLocation(2, 10, 10), 3) {
		t.Error("other map reported inside")
	}
}

func TestLocation_Immutable(t *testing.T) {
	l := NewLocation(1, 10, 10)

	moved := l.Offset(-2, 3)
	if moved != NewLocation(1, 8, 13) {
		t.Errorf("Offset = %+v", moved)
	}
	if l != NewLocation(1, 10, 10) {
		t.Errorf("original changed: %+v", l)
	}
	if got := l.WithCoordinates(0, 1); got != NewLocation(1, 0, 1) {
		t.Errorf("WithCoordinates = %+v", got)
	}
}
