// File: seq/view.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy logical view over the segment chain, and the positions it
// hands to ConsumeTo.

package seq

import "github.com/momentics/hioload-buf/api"

// Position addresses one element boundary inside a sequence: the
// segment holding it and the local offset within that segment's block.
// Two positions are equal iff they name the same segment identity and
// the same offset; compare with ==.
type Position struct {
	seg *segment
	off int
}

// View is a borrowed, non-owning projection over the active segments of
// a Sequence at the moment it was taken. It owns no memory and stays
// readable until the next call that releases storage (ConsumeTo, Reset,
// or a RequestWritable that replaces a zero-length tail); reads through
// an outdated view fail with api.ErrStaleView. Commit does not
// invalidate views: a view keeps exposing the range it saw at creation.
type View struct {
	owner *Sequence
	gen   uint64
	head  *segment
	start int
	tail  *segment
	end   int
}

// View takes a zero-copy projection spanning everything committed so
// far, head.start to tail.end. Empty chain yields an empty view.
func (s *Sequence) View() View {
	if s.head == nil {
		return View{owner: s, gen: s.gen}
	}
	return View{
		owner: s,
		gen:   s.gen,
		head:  s.head,
		start: s.head.start,
		tail:  s.tail,
		end:   s.tail.end,
	}
}

// Len reports the number of elements the view spans. Meaningful only
// while the view is valid.
func (v View) Len() int64 {
	if v.head == nil {
		return 0
	}
	return v.tail.runningIndex + int64(v.end) -
		v.head.runningIndex - int64(v.start)
}

// Empty reports whether the view spans no elements.
func (v View) Empty() bool { return v.Len() == 0 }

func (v View) stale() bool { return v.owner == nil || v.gen != v.owner.gen }

// Chunks walks the view's contiguous chunks in order. fn receives the
// absolute running offset of the chunk's first element and the chunk
// itself; returning false stops the walk. The chunk slices alias the
// sequence's storage and must not be retained past the view's
// validity.
func (v View) Chunks(fn func(off int64, chunk []byte) bool) error {
	if v.stale() {
		return api.NewError(api.ErrCodeStaleView, "view outdated by a mutating call")
	}
	if v.head == nil {
		return nil
	}
	for seg := v.head; seg != nil; seg = seg.next {
		lo, hi := seg.start, seg.end
		if seg == v.head {
			lo = v.start
		}
		if seg == v.tail {
			hi = v.end
		}
		if hi > lo {
			if !fn(seg.runningIndex+int64(lo), seg.block[lo:hi]) {
				return nil
			}
		}
		if seg == v.tail {
			break
		}
	}
	return nil
}

// Copy flattens the view into a fresh slice.
func (v View) Copy() ([]byte, error) {
	if v.stale() {
		return nil, api.NewError(api.ErrCodeStaleView, "view outdated by a mutating call")
	}
	out := make([]byte, 0, v.Len())
	_ = v.Chunks(func(_ int64, chunk []byte) bool {
		out = append(out, chunk...)
		return true
	})
	return out, nil
}

// Start returns the position of the view's first element.
func (v View) Start() Position {
	if v.head == nil {
		return Position{}
	}
	return Position{seg: v.head, off: v.start}
}

// End returns the position one past the view's last element. Consuming
// to it drains everything the view spans.
func (v View) End() Position {
	if v.tail == nil {
		return Position{}
	}
	return Position{seg: v.tail, off: v.end}
}

// Seek resolves an offset relative to the view's start, 0..Len
// inclusive, to a position for ConsumeTo. A position landing on a
// segment boundary names the start of the following segment.
func (v View) Seek(off int64) (Position, error) {
	if v.stale() {
		return Position{}, api.NewError(api.ErrCodeStaleView, "view outdated by a mutating call")
	}
	if off < 0 || off > v.Len() {
		return Position{}, api.NewError(api.ErrCodeOutOfRange, "offset outside view").
			WithContext("offset", off).
			WithContext("len", v.Len())
	}
	if v.head == nil {
		return Position{}, nil
	}
	target := v.head.runningIndex + int64(v.start) + off
	for seg := v.head; seg != nil; seg = seg.next {
		hi := seg.end
		if seg == v.tail {
			hi = v.end
		}
		endAbs := seg.runningIndex + int64(hi)
		if target < endAbs || seg == v.tail {
			return Position{seg: seg, off: int(target - seg.runningIndex)}, nil
		}
	}
	return Position{}, api.NewError(api.ErrCodeInternal, "view chain ended before offset")
}
