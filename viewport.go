package treeline

import "fmt"

// ViewPort relates a node's virtual content to what is visible and where it
// sits in its parent: canvas is the full content size, view the
// sub-rectangle of the canvas currently scrolled into visibility, and
// position the location of the view's top-left in the parent's canvas.
//
// The invariant view ⊆ canvas.Rect() holds after every exported call, never
// transiently broken: only NewViewPort can reject geometry, and every
// mutator funnels through clamped assignment, so over-scroll and shrinking
// resizes saturate at the canvas boundary instead of erroring.
//
// A ViewPort is owned exclusively by the node it describes and is never
// shared between nodes.
type ViewPort struct {
	canvas   Expanse
	view     Rect
	position Point
}

// NewViewPort creates a ViewPort. Errors, wrapping ErrGeometry, if view is
// not contained in the canvas.
func NewViewPort(canvas Expanse, view Rect, position Point) (*ViewPort, error) {
	if !canvas.Rect().ContainsRect(view) {
		return nil, fmt.Errorf("view %+v not contained in canvas %+v: %w", view, canvas, ErrGeometry)
	}
	return &ViewPort{canvas: canvas, view: view, position: position}, nil
}

// Canvas returns the virtual content size.
func (v *ViewPort) Canvas() Expanse {
	return v.canvas
}

// View returns the visible sub-rectangle of the canvas.
func (v *ViewPort) View() Rect {
	return v.view
}

// Position returns the location of the view's top-left in the parent's
// canvas.
func (v *ViewPort) Position() Point {
	return v.position
}

// setView stores r clamped into the canvas: shrunk to fit if oversized, then
// translated inside. Every mutator goes through here.
func (v *ViewPort) setView(r Rect) {
	v.view = r.clampInto(v.canvas.Rect())
}

// SetCanvas replaces the canvas and re-clamps the current view into it,
// shrinking or relocating the view as needed.
func (v *ViewPort) SetCanvas(sz Expanse) {
	v.canvas = sz
	v.setView(v.view)
}

// SetView sets the view, clamped into the current canvas.
func (v *ViewPort) SetView(r Rect) {
	v.setView(r)
}

// SetPosition moves the view's placement in the parent's canvas.
func (v *ViewPort) SetPosition(p Point) {
	v.position = p
}

// ScrollTo moves the view's top-left to (x, y), saturating at the canvas
// boundary. Calling it twice with the same arguments is a no-op the second
// time.
func (v *ViewPort) ScrollTo(x, y int) {
	v.setView(Rect{X: x, Y: y, Width: v.view.Width, Height: v.view.Height})
}

// ScrollBy moves the view by (dx, dy), saturating at the canvas boundary.
func (v *ViewPort) ScrollBy(dx, dy int) {
	v.ScrollTo(v.view.X+dx, v.view.Y+dy)
}

// PageUp scrolls up by one view height.
func (v *ViewPort) PageUp() {
	v.ScrollBy(0, -v.view.Height)
}

// PageDown scrolls down by one view height.
func (v *ViewPort) PageDown() {
	v.ScrollBy(0, v.view.Height)
}

// ScrollUp scrolls up by one cell.
func (v *ViewPort) ScrollUp() {
	v.ScrollBy(0, -1)
}

// ScrollDown scrolls down by one cell.
func (v *ViewPort) ScrollDown() {
	v.ScrollBy(0, 1)
}

// ScrollLeft scrolls left by one cell.
func (v *ViewPort) ScrollLeft() {
	v.ScrollBy(-1, 0)
}

// ScrollRight scrolls right by one cell.
func (v *ViewPort) ScrollRight() {
	v.ScrollBy(1, 0)
}

// FitSize sets a new canvas and resizes the view to min(size, viewSize) per
// axis, preserving the view's previous top-left as far as the new canvas
// allows.
func (v *ViewPort) FitSize(size Expanse, viewSize Expanse) {
	v.canvas = size
	v.setView(Rect{
		X:      v.view.X,
		Y:      v.view.Y,
		Width:  min(size.Width, viewSize.Width),
		Height: min(size.Height, viewSize.Height),
	})
}

// ScreenRect returns the view translated to the viewport's position. The
// result is an absolute screen rectangle only for a root-level viewport;
// nested nodes need the full ancestor chain (see ViewStack.Projection).
func (v *ViewPort) ScreenRect() Rect {
	return Rect{X: v.position.X, Y: v.position.Y, Width: v.view.Width, Height: v.view.Height}
}

// VActive splits a vertical scrollbar track into (pre, active, post)
// segments, sizing the thumb from how the view sits in the canvas.
func (v *ViewPort) VActive(track LineSegment) (pre, active, post LineSegment, err error) {
	return track.SplitActive(v.canvas.Rect().VExtent(), v.view.VExtent())
}

// HActive splits a horizontal scrollbar track into (pre, active, post)
// segments, sizing the thumb from how the view sits in the canvas.
func (v *ViewPort) HActive(track LineSegment) (pre, active, post LineSegment, err error) {
	return track.SplitActive(v.canvas.Rect().HExtent(), v.view.HExtent())
}
