package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 2, 22, 12)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, want 25", r.Right())
	}
	if r.Bottom() != 14 {
		t.Errorf("Bottom() = %d, want 14", r.Bottom())
	}
}

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		n    int
		want Rect
	}{
		{"panel border", NewRect(0, 0, 12, 7), 1, NewRect(1, 1, 10, 5)},
		{"field border", NewRect(13, 0, 22, 22), 1, NewRect(14, 1, 20, 20)},
		{"zero", NewRect(4, 4, 6, 6), 0, NewRect(4, 4, 6, 6)},
		{"collapses to empty", NewRect(0, 0, 3, 1), 2, NewRect(2, 2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inset(tt.n); got != tt.want {
				t.Errorf("Inset(%d) = %+v, want %+v", tt.n, got, tt.want)
			}
		})
	}
}
