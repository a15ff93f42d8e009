package treeline

import "github.com/treeline-ui/treeline/internal/debug"

// Direction is a focus-navigation request.
type Direction int

const (
	// Up moves focus toward smaller y.
	Up Direction = iota
	// Down moves focus toward larger y.
	Down
	// Left moves focus toward smaller x.
	Left
	// Right moves focus toward larger x.
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// FocusableNode is a transient query result pairing a node's identity with
// its absolute screen rectangle. It is valid only for the traversal that
// produced it; a scroll or layout pass invalidates the rect.
type FocusableNode struct {
	ID   NodeID
	Rect Rect
}

// CollectFocusable walks the tree under root the same way rendering does,
// recording every visible node that accepts focus together with its
// projected screen rect. Hidden subtrees and subtrees with an empty
// projection are pruned. Because the rects come from the same
// ViewStack.Projection used for drawing and hit testing, a focusable node's
// recorded rect is always exactly where it is drawn.
func CollectFocusable(root Node) ([]FocusableNode, error) {
	var nodes []FocusableNode
	var stack ViewStack
	var visit func(n Node) error
	visit = func(n Node) error {
		if n.Hidden() {
			return nil
		}
		stack.Push(n.VP())
		defer stack.Pop()

		_, screen, visible := stack.Projection()
		if !visible {
			return nil
		}
		if n.AcceptFocus() {
			nodes = append(nodes, FocusableNode{ID: n.ID(), Rect: screen})
		}
		return n.Children(visit)
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return nodes, nil
}

// offAxisPenalty is the fixed cost, per cell of cross-axis misalignment,
// added when scoring a directional candidate. It dominates any realistic
// on-axis gap, so candidates on the current row (or column) always beat
// merely closer off-row ones.
const offAxisPenalty = 1 << 16

// FindFocusTarget selects the node focus should move to from current in the
// given direction. Candidates are typically the result of CollectFocusable;
// currentID and any candidate not legitimately in the direction are
// filtered out, the rest scored, and the minimum score wins. A candidate
// qualifies either by sitting strictly beyond the current rect's far edge on
// the movement axis (an exactly abutting edge counts as beyond: edges are
// exclusive, so flush panes share no cells), or by overlapping the current
// rect on the movement axis while still extending further in the requested
// direction, which covers irregular and overlapping layouts.
//
// ok is false when no candidate qualifies; focus does not change and
// callers must treat this as a no-op, not a failure.
func FindFocusTarget(current Rect, dir Direction, candidates []FocusableNode, currentID NodeID) (id NodeID, ok bool) {
	best := 0
	for _, c := range candidates {
		if c.ID == currentID {
			continue
		}
		score, qualifies := directionScore(current, c.Rect, dir)
		if !qualifies {
			continue
		}
		if !ok || score < best {
			id, best, ok = c.ID, score, true
		}
	}
	if ok {
		debug.Log("FindFocusTarget: %v from %d -> %d (score=%d)", dir, currentID, id, best)
	}
	return id, ok
}

// directionScore reports whether cand qualifies as a move from cur in dir,
// and if so its score. Lower is better: perfect row (or column) alignment of
// the top-left corners is ranked purely by the on-axis gap, and every cell
// of misalignment costs offAxisPenalty on top of it.
func directionScore(cur, cand Rect, dir Direction) (int, bool) {
	var beyond, extends bool
	switch dir {
	case Right:
		beyond = cand.X >= cur.Right()
		extends = overlaps(cur.HExtent(), cand.HExtent()) && cand.Right() > cur.Right()
	case Left:
		beyond = cand.Right() <= cur.X
		extends = overlaps(cur.HExtent(), cand.HExtent()) && cand.X < cur.X
	case Down:
		beyond = cand.Y >= cur.Bottom()
		extends = overlaps(cur.VExtent(), cand.VExtent()) && cand.Bottom() > cur.Bottom()
	case Up:
		beyond = cand.Bottom() <= cur.Y
		extends = overlaps(cur.VExtent(), cand.VExtent()) && cand.Y < cur.Y
	}
	if !beyond && !extends {
		return 0, false
	}

	dx := abs(cand.X - cur.X)
	dy := abs(cand.Y - cur.Y)
	switch dir {
	case Left, Right:
		return dy*offAxisPenalty + dx, true
	default:
		return dx*offAxisPenalty + dy, true
	}
}

func overlaps(a, b LineSegment) bool {
	return !a.Intersection(b).IsEmpty()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Focused returns the node currently holding focus, or nil if none does.
func Focused(fs *FocusState, root Node) (Node, error) {
	w, err := Preorder(root, func(n Node) (Walk[Node], error) {
		if fs.IsFocused(n) {
			return Handle(n), nil
		}
		return Continue[Node](), nil
	})
	if err != nil {
		return nil, err
	}
	n, _ := w.Handled()
	return n, nil
}

// nodeByID returns the node with the given id, or nil if absent.
func nodeByID(root Node, id NodeID) (Node, error) {
	w, err := Preorder(root, func(n Node) (Walk[Node], error) {
		if n.ID() == id {
			return Handle(n), nil
		}
		return Continue[Node](), nil
	})
	if err != nil {
		return nil, err
	}
	n, _ := w.Handled()
	return n, nil
}

// focusableSeq returns the focusable nodes under root in preorder, skipping
// hidden subtrees. This is the purely topological order snake navigation
// moves through; geometry plays no part.
func focusableSeq(root Node) ([]Node, error) {
	var out []Node
	_, err := Preorder(root, func(n Node) (Walk[struct{}], error) {
		if n.Hidden() {
			return Skip[struct{}](), nil
		}
		if n.AcceptFocus() {
			out = append(out, n)
		}
		return Continue[struct{}](), nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FocusFirst focuses the first focusable node under root in preorder.
// A no-op when the tree has no focusable node.
func FocusFirst(fs *FocusState, root Node) error {
	seq, err := focusableSeq(root)
	if err != nil {
		return err
	}
	if len(seq) > 0 {
		fs.Focus(seq[0])
	}
	return nil
}

// ShiftNext moves focus to the next focusable node after the current one in
// preorder, wrapping to the first when the end is reached. When nothing is
// focused, or the focused node is no longer in the traversal, focuses the
// first focusable node.
func ShiftNext(fs *FocusState, root Node) error {
	return shift(fs, root, 1)
}

// ShiftPrev moves focus to the previous focusable node before the current
// one in preorder, wrapping to the last. When nothing is focused, focuses
// the last focusable node.
func ShiftPrev(fs *FocusState, root Node) error {
	return shift(fs, root, -1)
}

func shift(fs *FocusState, root Node, step int) error {
	seq, err := focusableSeq(root)
	if err != nil {
		return err
	}
	if len(seq) == 0 {
		return nil
	}
	cur := -1
	for i, n := range seq {
		if fs.IsFocused(n) {
			cur = i
			break
		}
	}
	var target Node
	if cur == -1 {
		if step > 0 {
			target = seq[0]
		} else {
			target = seq[len(seq)-1]
		}
	} else {
		target = seq[(cur+step+len(seq))%len(seq)]
	}
	fs.Focus(target)
	return nil
}

// FocusDirection moves focus spatially in the given direction: it collects
// the focusable nodes with their screen rects, scores them against the
// focused node's rect via FindFocusTarget, and focuses the winner. When
// nothing is focused it focuses the first focusable node instead. When
// there is no qualifying target, or the focused node is not currently
// visible, focus does not change.
func FocusDirection(fs *FocusState, root Node, dir Direction) error {
	cur, err := Focused(fs, root)
	if err != nil {
		return err
	}
	if cur == nil {
		return FocusFirst(fs, root)
	}

	candidates, err := CollectFocusable(root)
	if err != nil {
		return err
	}
	var curRect Rect
	visible := false
	for _, c := range candidates {
		if c.ID == cur.ID() {
			curRect, visible = c.Rect, true
			break
		}
	}
	if !visible {
		debug.Log("FocusDirection: focused node %d not visible, staying put", cur.ID())
		return nil
	}

	id, ok := FindFocusTarget(curRect, dir, candidates, cur.ID())
	if !ok {
		return nil
	}
	target, err := nodeByID(root, id)
	if err != nil {
		return err
	}
	if target != nil {
		fs.Focus(target)
	}
	return nil
}

// FocusUp moves focus to the nearest qualifying node above the focused one.
func FocusUp(fs *FocusState, root Node) error {
	return FocusDirection(fs, root, Up)
}

// FocusDown moves focus to the nearest qualifying node below the focused one.
func FocusDown(fs *FocusState, root Node) error {
	return FocusDirection(fs, root, Down)
}

// FocusLeft moves focus to the nearest qualifying node left of the focused one.
func FocusLeft(fs *FocusState, root Node) error {
	return FocusDirection(fs, root, Left)
}

// FocusRight moves focus to the nearest qualifying node right of the focused one.
func FocusRight(fs *FocusState, root Node) error {
	return FocusDirection(fs, root, Right)
}

// FocusPath walks from the focused node to the root, invoking f on the
// focused node first and then on each ancestor in turn. f may return Handle
// to stop early with a value; Skip and Continue both keep climbing. When
// nothing is focused, f is never invoked and the result is Continue.
func FocusPath[T any](fs *FocusState, root Node, f func(Node) (Walk[T], error)) (Walk[T], error) {
	onPath := false
	return Postorder(root, func(n Node) (Walk[T], error) {
		if !onPath && !fs.IsFocused(n) {
			return Continue[T](), nil
		}
		onPath = true
		w, err := f(n)
		if err != nil {
			return Walk[T]{}, err
		}
		if _, ok := w.Handled(); ok {
			return w, nil
		}
		// Skip stops siblings but keeps visiting the path to the root.
		return Skip[T](), nil
	})
}
