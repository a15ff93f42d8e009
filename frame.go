package treeline

import "fmt"

// Frame decomposes a rectangle into the parts of a border frame: four
// corners, four edges, and the inner content area. The parts tile the outer
// rectangle exactly, so a painter can draw each independently, and the Right
// and Bottom edges double as scrollbar tracks (see ViewPort.VActive and
// ViewPort.HActive). Painting itself is a concern of the host toolkit;
// Frame is geometry only.
type Frame struct {
	TopLeft     Rect
	Top         Rect
	TopRight    Rect
	Left        Rect
	Right       Rect
	BottomLeft  Rect
	Bottom      Rect
	BottomRight Rect
	Inner       Rect
}

// NewFrame computes the frame parts of outer for a border of the given
// width. Errors, wrapping ErrGeometry, when outer cannot hold the border on
// all four sides.
func NewFrame(outer Rect, width int) (Frame, error) {
	if width <= 0 {
		return Frame{}, fmt.Errorf("frame width %d must be positive: %w", width, ErrGeometry)
	}
	if outer.Width < 2*width || outer.Height < 2*width {
		return Frame{}, fmt.Errorf("%dx%d rect too small for frame of width %d: %w",
			outer.Width, outer.Height, width, ErrGeometry)
	}

	innerW := outer.Width - 2*width
	innerH := outer.Height - 2*width
	return Frame{
		TopLeft:     Rect{X: outer.X, Y: outer.Y, Width: width, Height: width},
		Top:         Rect{X: outer.X + width, Y: outer.Y, Width: innerW, Height: width},
		TopRight:    Rect{X: outer.Right() - width, Y: outer.Y, Width: width, Height: width},
		Left:        Rect{X: outer.X, Y: outer.Y + width, Width: width, Height: innerH},
		Right:       Rect{X: outer.Right() - width, Y: outer.Y + width, Width: width, Height: innerH},
		BottomLeft:  Rect{X: outer.X, Y: outer.Bottom() - width, Width: width, Height: width},
		Bottom:      Rect{X: outer.X + width, Y: outer.Bottom() - width, Width: innerW, Height: width},
		BottomRight: Rect{X: outer.Right() - width, Y: outer.Bottom() - width, Width: width, Height: width},
		Inner:       Rect{X: outer.X + width, Y: outer.Y + width, Width: innerW, Height: innerH},
	}, nil
}
