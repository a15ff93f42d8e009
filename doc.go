// Package treeline is the geometry and traversal core of a terminal UI
// toolkit.
//
// Given an externally owned widget tree, it answers where things are and
// which node is reachable: per-node viewports (ViewPort) compose through
// the ancestor chain (ViewStack) into absolute screen rectangles, a
// tri-state tree-walk algebra (Walk, Preorder, Postorder) drives every
// descent, and point hit testing (Locate, NodeAt) and focus navigation
// (CollectFocusable, FindFocusTarget, ShiftNext, FocusDirection) are built
// on the same projection machinery, so what is drawn, what can be clicked
// and what can be focused always agree.
//
// The package decides neither what to draw nor when; rendering, widgets,
// styling and input belong to the host toolkit, which reaches this core
// through the Node and FocusState types.
package treeline
