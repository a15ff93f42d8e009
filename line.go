package treeline

import "fmt"

// LineSegment is a one-dimensional extent: an offset and a length along a
// single axis. It is the unit of scrollbar math—a rectangle decomposes into
// its horizontal and vertical segments via Rect.HExtent and Rect.VExtent.
type LineSegment struct {
	Off, Len int
}

// End returns the coordinate one past the final position (exclusive).
func (l LineSegment) End() int {
	return l.Off + l.Len
}

// IsEmpty returns true if the segment has zero or negative length.
func (l LineSegment) IsEmpty() bool {
	return l.Len <= 0
}

// Contains returns true if pos lies within the segment. The start offset is
// inside; the end offset is outside.
func (l LineSegment) Contains(pos int) bool {
	return pos >= l.Off && pos < l.End()
}

// ContainsSegment returns true if other lies entirely within the segment.
// An empty segment is contained by anything.
func (l LineSegment) ContainsSegment(other LineSegment) bool {
	if other.IsEmpty() {
		return true
	}
	if l.IsEmpty() {
		return false
	}
	return other.Off >= l.Off && other.End() <= l.End()
}

// Intersection returns the overlap of two segments.
// If the segments don't overlap, returns an empty LineSegment.
func (l LineSegment) Intersection(other LineSegment) LineSegment {
	off := max(l.Off, other.Off)
	end := min(l.End(), other.End())
	if end-off <= 0 {
		return LineSegment{}
	}
	return LineSegment{Off: off, Len: end - off}
}

// SplitActive splits the segment into three contiguous pieces (pre, active,
// post) proportional to how view sits within window: the segment is a
// scrollbar track, window is the full extent of the content, view the
// visible portion, and active the thumb. The active length is ceil-rounded
// from the thumb's fractional coverage and the pre length floor-rounded from
// its fractional offset, in that order, so rounding can never shrink the
// thumb below its true proportional size. Errors, wrapping ErrGeometry, if
// view does not lie within window or window is empty.
func (l LineSegment) SplitActive(window, view LineSegment) (pre, active, post LineSegment, err error) {
	if window.IsEmpty() || !window.ContainsSegment(view) {
		return LineSegment{}, LineSegment{}, LineSegment{},
			fmt.Errorf("view %+v not within window %+v: %w", view, window, ErrGeometry)
	}

	activeLen := (l.Len*view.Len + window.Len - 1) / window.Len
	if activeLen > l.Len {
		activeLen = l.Len
	}
	preLen := l.Len * (view.Off - window.Off) / window.Len
	if preLen+activeLen > l.Len {
		preLen = l.Len - activeLen
	}

	pre = LineSegment{Off: l.Off, Len: preLen}
	active = LineSegment{Off: pre.End(), Len: activeLen}
	post = LineSegment{Off: active.End(), Len: l.Len - preLen - activeLen}
	return pre, active, post, nil
}
