package treeline

// ViewStack composes the chain of ancestor viewports encountered during a
// tree descent into an absolute screen rectangle. Each ancestor may
// independently scroll and clip its children, so a descendant's true
// on-screen placement depends on the entire chain, not just its own
// viewport.
//
// A ViewStack is always local to a single traversal: push one viewport per
// descent step, pop on return, and never retain the stack afterward.
// Projection is only meaningful while pushes and pops mirror the
// traversal's recursion depth exactly.
type ViewStack struct {
	stack []*ViewPort
}

// Push adds a viewport for the node currently being descended into.
func (s *ViewStack) Push(v *ViewPort) {
	s.stack = append(s.stack, v)
}

// Pop removes the most recently pushed viewport.
func (s *ViewStack) Pop() {
	s.stack = s.stack[:len(s.stack)-1]
}

// Depth returns the number of viewports on the stack.
func (s *ViewStack) Depth() int {
	return len(s.stack)
}

// Projection composes the stack from the root down into the innermost
// node's absolute placement. At each level the child's position is
// translated into screen coordinates through the parent's already-computed
// placement, and the running visible window is intersected with the child's
// view—a node can be partially or fully obscured by an ancestor's clip even
// when its own view/canvas relationship is valid.
//
// It returns the screen coordinate of the innermost view's top-left before
// clipping, the clipped absolute screen rectangle, and ok == false when the
// accumulated intersection is empty (the node is fully invisible; nodes with
// a zero-area view are invisible by definition). A canvas point q of the
// innermost node renders at offset.Add(q.Sub(view.TopLeft())).
//
// Rendering, hit testing and focus collection all share this routine, so
// what is drawn, what can be clicked and what can be focused are always
// geometrically consistent.
func (s *ViewStack) Projection() (offset Point, screen Rect, ok bool) {
	if len(s.stack) == 0 {
		return Point{}, Rect{}, false
	}

	root := s.stack[0]
	if root.view.IsEmpty() {
		return Point{}, Rect{}, false
	}
	base := root.position
	window := root.view.At(base)
	prev := root

	for _, vp := range s.stack[1:] {
		if vp.view.IsEmpty() {
			return Point{}, Rect{}, false
		}
		// The parent's canvas maps to the screen at base - prev.view.TopLeft().
		tl := base.Add(vp.position.Sub(prev.view.TopLeft()))
		window = window.Intersect(vp.view.At(tl))
		if window.IsEmpty() {
			return Point{}, Rect{}, false
		}
		base = tl
		prev = vp
	}
	return base, window, true
}
