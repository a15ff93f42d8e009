package treeline

// walkKind is the discriminant of a Walk value.
type walkKind uint8

const (
	walkContinue walkKind = iota
	walkSkip
	walkHandle
)

// Walk is the tri-state control value returned by traversal callbacks:
// Continue keeps the walk going, Skip prunes (with direction-dependent
// meaning, see Preorder and Postorder), and Handle terminates the entire
// traversal immediately, carrying a result of type T back to the caller.
type Walk[T any] struct {
	kind  walkKind
	value T
}

// Continue keeps the traversal going.
func Continue[T any]() Walk[T] {
	return Walk[T]{kind: walkContinue}
}

// Skip prunes the traversal. In a preorder walk it prunes the returning
// node's subtree; in a postorder walk it stops sibling visitation while
// still visiting the path back to the root.
func Skip[T any]() Walk[T] {
	return Walk[T]{kind: walkSkip}
}

// Handle terminates the whole traversal immediately with the given value.
func Handle[T any](v T) Walk[T] {
	return Walk[T]{kind: walkHandle, value: v}
}

// IsContinue returns true for a Continue value.
func (w Walk[T]) IsContinue() bool {
	return w.kind == walkContinue
}

// IsSkip returns true for a Skip value.
func (w Walk[T]) IsSkip() bool {
	return w.kind == walkSkip
}

// Handled returns the carried value and true for a Handle value.
func (w Walk[T]) Handled() (T, bool) {
	return w.value, w.kind == walkHandle
}

// Preorder visits n, then—only if the callback returned Continue—recurses
// into its children in order. A child resolving to Skip prunes just that
// child's subtree: Skip is normalized back to Continue at the parent and
// never propagates upward. Handle from any point aborts the whole walk with
// its value, as does an error, with no further callbacks at any level.
//
// Traversals thread exclusive access to the tree through their callbacks;
// never run two traversals over the same tree concurrently.
func Preorder[T any](n Node, f func(Node) (Walk[T], error)) (Walk[T], error) {
	w, err := f(n)
	if err != nil {
		return Walk[T]{}, err
	}
	if _, ok := w.Handled(); ok {
		return w, nil
	}
	if w.IsSkip() {
		return Continue[T](), nil
	}

	res := Continue[T]()
	done := false
	err = n.Children(func(c Node) error {
		if done {
			return nil
		}
		cw, cerr := Preorder(c, f)
		if cerr != nil {
			return cerr
		}
		if _, ok := cw.Handled(); ok {
			res = cw
			done = true
		}
		return nil
	})
	if err != nil {
		return Walk[T]{}, err
	}
	return res, nil
}

// Postorder visits n's children first, depth-first, in order. When a child's
// aggregated result is not Continue, sibling visitation stops immediately. A
// Skip still visits the current node's callback on the way out and forces
// the node's own result to Skip, bubbling "stop descending further but keep
// visiting the path back to the root" all the way up. A Handle bubbles
// unchanged without invoking any further callbacks. An error aborts the walk
// immediately at every level.
//
// The same exclusive-access convention as Preorder applies.
func Postorder[T any](n Node, f func(Node) (Walk[T], error)) (Walk[T], error) {
	agg := Continue[T]()
	err := n.Children(func(c Node) error {
		if !agg.IsContinue() {
			return nil
		}
		cw, cerr := Postorder(c, f)
		if cerr != nil {
			return cerr
		}
		agg = cw
		return nil
	})
	if err != nil {
		return Walk[T]{}, err
	}
	if _, ok := agg.Handled(); ok {
		return agg, nil
	}

	w, err := f(n)
	if err != nil {
		return Walk[T]{}, err
	}
	if _, ok := w.Handled(); ok {
		return w, nil
	}
	if agg.IsSkip() || w.IsSkip() {
		return Skip[T](), nil
	}
	return Continue[T](), nil
}
