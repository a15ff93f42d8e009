package treeline

import "github.com/treeline-ui/treeline/internal/debug"

// NodeID identifies a node in the host's tree. IDs are assigned by the host
// runtime (typically indices into an arena or generational handles) and are
// opaque to this package beyond equality.
type NodeID uint64

// Node is the capability the host widget tree exposes to this package. The
// tree itself—its node types, layout pass and lifecycle—belongs to the
// host; this package only walks it.
//
// Children must invoke f once per child in order, stop at the first error f
// returns, and return that error unchanged. The tree is assumed acyclic;
// this package does not verify it.
type Node interface {
	// Children iterates over the node's children in order.
	Children(f func(Node) error) error

	// VP returns the node's viewport. The host's layout pass assigns it;
	// this package reads and scrolls it.
	VP() *ViewPort

	// Hidden returns whether this node and its whole subtree are excluded
	// from geometry and focus queries.
	Hidden() bool

	// AcceptFocus returns whether this node is a legal focus target.
	AcceptFocus() bool

	// ID returns the node's identity.
	ID() NodeID

	// FocusGen returns the focus generation stamped on this node.
	// See FocusState.
	FocusGen() uint64

	// SetFocusGen stamps a focus generation on this node. Called only by
	// FocusState.Focus.
	SetFocusGen(gen uint64)
}

// FocusState tracks which node holds focus, as a monotonically increasing
// generation counter: focusing a node bumps the counter and stamps the node
// with it, so exactly one node carries the current maximum at any time. The
// runtime owns one FocusState per tree and passes it by pointer into every
// focus query and mutator; there is no package-level focus state.
//
// The zero value is ready to use and means nothing is focused yet.
type FocusState struct {
	gen uint64
}

// NewFocusState creates a FocusState with nothing focused.
func NewFocusState() *FocusState {
	return &FocusState{}
}

// Current returns the current focus generation. Zero means nothing has ever
// been focused.
func (fs *FocusState) Current() uint64 {
	return fs.gen
}

// Focus bumps the generation and stamps n with it, making n the focused
// node. Whatever was focused before keeps its stale stamp and simply stops
// comparing equal.
func (fs *FocusState) Focus(n Node) {
	fs.gen++
	n.SetFocusGen(fs.gen)
	debug.Log("FocusState.Focus: node=%d gen=%d", n.ID(), fs.gen)
}

// IsFocused returns whether n is the focused node.
func (fs *FocusState) IsFocused(n Node) bool {
	return fs.gen != 0 && n.FocusGen() == fs.gen
}
