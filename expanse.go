package treeline

// Expanse represents the size of a node's virtual canvas—the full content
// area a node owns, addressed from (0, 0). It carries no position.
type Expanse struct {
	Width, Height int
}

// NewExpanse creates an Expanse with the given dimensions.
func NewExpanse(width, height int) Expanse {
	return Expanse{Width: width, Height: height}
}

// Rect returns the expanse as a rectangle anchored at the origin.
func (e Expanse) Rect() Rect {
	return Rect{X: 0, Y: 0, Width: e.Width, Height: e.Height}
}

// IsEmpty returns true if the expanse has zero or negative area.
func (e Expanse) IsEmpty() bool {
	return e.Width <= 0 || e.Height <= 0
}

// Contains returns true if the point lies within the expanse.
func (e Expanse) Contains(p Point) bool {
	return p.In(e.Rect())
}
