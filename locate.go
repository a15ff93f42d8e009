package treeline

import "github.com/treeline-ui/treeline/internal/debug"

// locateKind is the discriminant of a LocateResult value.
type locateKind uint8

const (
	locateContinue locateKind = iota
	locateStop
	locateMatch
)

// LocateResult is returned by Locate callbacks for nodes containing the
// query point: LocateContinue descends without recording, LocateMatch
// records a candidate and keeps descending so an inner match can overwrite
// it, and LocateStop records and prunes the children—this node is
// authoritative for the point.
type LocateResult[T any] struct {
	kind  locateKind
	value T
}

// LocateContinue descends into children without recording a candidate.
func LocateContinue[T any]() LocateResult[T] {
	return LocateResult[T]{kind: locateContinue}
}

// LocateMatch records v as the current candidate and keeps descending;
// a deeper match overwrites it.
func LocateMatch[T any](v T) LocateResult[T] {
	return LocateResult[T]{kind: locateMatch, value: v}
}

// LocateStop records v and prunes the node's children.
func LocateStop[T any](v T) LocateResult[T] {
	return LocateResult[T]{kind: locateStop, value: v}
}

// Locate hit-tests the point p against the tree under root. It descends in
// preorder while maintaining a ViewStack, pruning hidden subtrees without
// invoking the callback, and pruning any subtree whose projected screen rect
// does not contain p—a child can never be visible outside its ancestor's
// clip. For each node under the point the callback decides whether to claim
// it; the last recorded value wins, so the effective result is the innermost
// node the callback was willing to claim, unless an ancestor returned
// LocateStop. ok is false when nothing under the point was claimed, a
// defined non-error outcome.
func Locate[T any](root Node, p Point, f func(Node) (LocateResult[T], error)) (result T, ok bool, err error) {
	var stack ViewStack
	var visit func(n Node) error
	visit = func(n Node) error {
		if n.Hidden() {
			return nil
		}
		stack.Push(n.VP())
		defer stack.Pop()

		_, screen, visible := stack.Projection()
		if !visible || !p.In(screen) {
			return nil
		}
		lr, lerr := f(n)
		if lerr != nil {
			return lerr
		}
		switch lr.kind {
		case locateStop:
			result, ok = lr.value, true
			return nil
		case locateMatch:
			result, ok = lr.value, true
		}
		return n.Children(visit)
	}

	if verr := visit(root); verr != nil {
		var zero T
		return zero, false, verr
	}
	return result, ok, nil
}

// NodeAt returns the innermost visible node under the point p, or nil if
// nothing is under it. A nil result is a defined non-error outcome.
func NodeAt(root Node, p Point) (Node, error) {
	n, ok, err := Locate(root, p, func(n Node) (LocateResult[Node], error) {
		return LocateMatch(n), nil
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		debug.Log("NodeAt: nothing under (%d, %d)", p.X, p.Y)
		return nil, nil
	}
	return n, nil
}
