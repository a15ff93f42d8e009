package treeline

import (
	"errors"
	"testing"
)

func TestNewFrame(t *testing.T) {
	outer := NewRect(10, 10, 20, 10)
	f, err := NewFrame(outer, 1)
	if err != nil {
		t.Fatalf("NewFrame() unexpected error: %v", err)
	}

	want := Frame{
		TopLeft:     NewRect(10, 10, 1, 1),
		Top:         NewRect(11, 10, 18, 1),
		TopRight:    NewRect(29, 10, 1, 1),
		Left:        NewRect(10, 11, 1, 8),
		Right:       NewRect(29, 11, 1, 8),
		BottomLeft:  NewRect(10, 19, 1, 1),
		Bottom:      NewRect(11, 19, 18, 1),
		BottomRight: NewRect(29, 19, 1, 1),
		Inner:       NewRect(11, 11, 18, 8),
	}
	if f != want {
		t.Errorf("NewFrame() = %+v, want %+v", f, want)
	}
}

// The nine frame parts must tile the outer rect exactly: disjoint, inside
// the outer rect, and covering its full area.
func TestFrame_PartsTile(t *testing.T) {
	outer := NewRect(3, 5, 17, 11)
	f, err := NewFrame(outer, 2)
	if err != nil {
		t.Fatalf("NewFrame() unexpected error: %v", err)
	}

	parts := []Rect{
		f.TopLeft, f.Top, f.TopRight,
		f.Left, f.Inner, f.Right,
		f.BottomLeft, f.Bottom, f.BottomRight,
	}
	area := 0
	for i, p := range parts {
		if !outer.ContainsRect(p) {
			t.Errorf("part %d (%+v) escapes outer rect", i, p)
		}
		for j := i + 1; j < len(parts); j++ {
			if p.Intersects(parts[j]) {
				t.Errorf("parts %d and %d overlap: %+v, %+v", i, j, p, parts[j])
			}
		}
		area += p.Area()
	}
	if area != outer.Area() {
		t.Errorf("parts cover area %d, want %d", area, outer.Area())
	}
}

func TestNewFrame_Errors(t *testing.T) {
	type tc struct {
		outer Rect
		width int
	}

	tests := map[string]tc{
		"zero width":     {outer: NewRect(0, 0, 10, 10), width: 0},
		"too narrow":     {outer: NewRect(0, 0, 3, 10), width: 2},
		"too short":      {outer: NewRect(0, 0, 10, 1), width: 1},
		"negative width": {outer: NewRect(0, 0, 10, 10), width: -1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewFrame(tt.outer, tt.width); !errors.Is(err, ErrGeometry) {
				t.Errorf("NewFrame() error = %v, want ErrGeometry", err)
			}
		})
	}
}
