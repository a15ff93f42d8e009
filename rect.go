package treeline

import (
	"errors"
	"fmt"
)

// ErrGeometry is the sentinel for impossible geometric constructions: a view
// that does not fit its canvas, a rect clamped into a smaller bound, a split
// with no room for every segment. It is the only hard-error kind in the
// package; every scroll and resize mutator clamps instead of erroring.
var ErrGeometry = errors.New("geometry error")

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// TopLeft returns the top-left corner of the rectangle.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle as an Expanse.
func (r Rect) Size() Expanse {
	return Expanse{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and
// bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within
// this rectangle. An empty rectangle is contained by anything.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// At returns a new Rect with the same size positioned at p.
func (r Rect) At(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, Width: r.Width, Height: r.Height}
}

// HExtent returns the horizontal extent of the rectangle as a LineSegment.
func (r Rect) HExtent() LineSegment {
	return LineSegment{Off: r.X, Len: r.Width}
}

// VExtent returns the vertical extent of the rectangle as a LineSegment.
func (r Rect) VExtent() LineSegment {
	return LineSegment{Off: r.Y, Len: r.Height}
}

// ClampWithin returns the rectangle translated the minimum distance needed to
// sit entirely inside bound. The size is never changed; it errors, wrapping
// ErrGeometry, when bound is smaller than the rectangle in either dimension,
// since no translation can satisfy containment.
func (r Rect) ClampWithin(bound Rect) (Rect, error) {
	if r.Width > bound.Width || r.Height > bound.Height {
		return Rect{}, fmt.Errorf("%dx%d rect cannot fit in %dx%d bound: %w",
			r.Width, r.Height, bound.Width, bound.Height, ErrGeometry)
	}
	return r.clampInto(bound), nil
}

// clampInto translates the rectangle inside bound, shrinking it first if
// bound is smaller in a dimension. Unlike ClampWithin it cannot fail; it is
// the funnel for every self-clamping viewport mutator.
func (r Rect) clampInto(bound Rect) Rect {
	if r.Width > bound.Width {
		r.Width = bound.Width
	}
	if r.Height > bound.Height {
		r.Height = bound.Height
	}
	if r.X < bound.X {
		r.X = bound.X
	}
	if r.Y < bound.Y {
		r.Y = bound.Y
	}
	if r.Right() > bound.Right() {
		r.X = bound.Right() - r.Width
	}
	if r.Bottom() > bound.Bottom() {
		r.Y = bound.Bottom() - r.Height
	}
	return r
}

// SplitHorizontal divides the rectangle into n columns laid out left to
// right. The columns are contiguous, non-overlapping, and cover the
// rectangle exactly; any rounding remainder is absorbed by the final column.
// Errors, wrapping ErrGeometry, if n is not positive or the rectangle is too
// narrow to give every column at least one cell.
func (r Rect) SplitHorizontal(n int) ([]Rect, error) {
	widths, err := splitLength(r.Width, n)
	if err != nil {
		return nil, err
	}
	out := make([]Rect, n)
	x := r.X
	for i, w := range widths {
		out[i] = Rect{X: x, Y: r.Y, Width: w, Height: r.Height}
		x += w
	}
	return out, nil
}

// SplitVertical divides the rectangle into n rows laid out top to bottom,
// with the same contract as SplitHorizontal.
func (r Rect) SplitVertical(n int) ([]Rect, error) {
	heights, err := splitLength(r.Height, n)
	if err != nil {
		return nil, err
	}
	out := make([]Rect, n)
	y := r.Y
	for i, h := range heights {
		out[i] = Rect{X: r.X, Y: y, Width: r.Width, Height: h}
		y += h
	}
	return out, nil
}

// splitLength divides length into n segment lengths that sum to length
// exactly, the last segment absorbing the remainder.
func splitLength(length, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("cannot split into %d segments: %w", n, ErrGeometry)
	}
	if length < n {
		return nil, fmt.Errorf("cannot split length %d into %d segments: %w", length, n, ErrGeometry)
	}
	each := length / n
	out := make([]int, n)
	for i := range out {
		out[i] = each
	}
	out[n-1] = length - each*(n-1)
	return out, nil
}
