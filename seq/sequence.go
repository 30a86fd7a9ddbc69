// File: seq/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sequence: orchestrates the segment chain. Write side requests
// writable regions and commits; read side takes zero-copy views and
// consumes prefixes.

package seq

import "github.com/momentics/hioload-buf/api"

// DefaultChunkSize is the lease size used when a write request carries
// no hint and the tail has no slack.
const DefaultChunkSize = 4096

// Sequence is a growable chain of leased segments. Empty state is
// all-or-nothing: head == nil iff tail == nil. The generation counter
// advances on every call that releases storage, invalidating
// outstanding views.
type Sequence struct {
	head      *segment
	tail      *segment
	free      freeList
	alloc     api.Allocator
	chunkSize int
	gen       uint64
}

// New creates an empty sequence backed by alloc.
func New(alloc api.Allocator, opts ...Option) (*Sequence, error) {
	if alloc == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "nil allocator")
	}
	s := &Sequence{
		alloc:     alloc,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.chunkSize <= 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "chunk size must be positive").
			WithContext("chunkSize", s.chunkSize)
	}
	if s.free.cap < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "free-list cap must be nonnegative").
			WithContext("cap", s.free.cap)
	}
	return s, nil
}

// Len reports the total number of buffered elements.
func (s *Sequence) Len() int64 {
	if s.head == nil {
		return 0
	}
	return s.tail.runningIndex + int64(s.tail.end) -
		s.head.runningIndex - int64(s.head.start)
}

// Empty reports whether the chain holds no segments.
func (s *Sequence) Empty() bool { return s.head == nil }

// SegmentCount walks the chain. Diagnostics only.
func (s *Sequence) SegmentCount() int {
	n := 0
	for seg := s.head; seg != nil; seg = seg.next {
		n++
	}
	return n
}

// FreeNodes reports how many retired segment nodes are parked for
// reuse. Diagnostics only.
func (s *Sequence) FreeNodes() int { return s.free.len() }

// RequestWritable returns a writable region of at least sizeHint
// elements over the tail's unused capacity, appending a new segment
// when the tail has too little slack. With sizeHint == 0 the region
// covers the tail's current slack, or a default chunk when there is
// none. The region stays valid until the next RequestWritable,
// ConsumeTo or Reset; only Commit makes data written into it visible.
func (s *Sequence) RequestWritable(sizeHint int) ([]byte, error) {
	if sizeHint < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative size hint").
			WithContext("sizeHint", sizeHint)
	}
	if sizeHint == 0 {
		if s.tail != nil && s.tail.writable() > 0 {
			sizeHint = s.tail.writable()
		} else {
			sizeHint = s.chunkSize
		}
	}
	if s.tail != nil && s.tail.writable() >= sizeHint {
		return s.tail.trailing(), nil
	}
	seg, err := s.appendSegment(sizeHint)
	if err != nil {
		return nil, err
	}
	return seg.trailing(), nil
}

// Commit makes n elements of the most recently requested region
// visible, extending the tail's active window. The caller must not
// commit more than it wrote into the requested region.
func (s *Sequence) Commit(n int) error {
	if n < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "negative commit count").
			WithContext("count", n)
	}
	if n == 0 {
		return nil
	}
	if s.tail == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "commit without a requested region")
	}
	return s.tail.grow(s.tail.end + n)
}

// ConsumeTo releases every element before pos and recycles the segments
// that held them: their blocks return to the allocator, their nodes to
// the free-list. pos must come from a view of this same sequence.
// Validation completes before any mutation, so a failed call leaves
// the sequence untouched.
func (s *Sequence) ConsumeTo(pos Position) error {
	target := pos.seg
	if target == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "position does not belong to this sequence")
	}
	found := false
	for seg := s.head; seg != nil; seg = seg.next {
		if seg == target {
			found = true
			break
		}
	}
	if !found {
		return api.NewError(api.ErrCodeInvalidArgument, "position does not belong to this sequence")
	}
	if pos.off < target.start {
		return api.NewError(api.ErrCodeInvalidArgument, "position earlier than current consumed point").
			WithContext("offset", pos.off).
			WithContext("start", target.start)
	}
	if pos.off > target.end {
		return api.NewError(api.ErrCodeOutOfRange, "position beyond committed data").
			WithContext("offset", pos.off).
			WithContext("end", target.end)
	}

	s.gen++
	for s.head != target {
		next := s.head.next
		s.head.release(s.alloc)
		s.free.release(s.head)
		s.head = next
	}
	if err := target.trim(pos.off); err != nil {
		return err
	}
	if target.length() == 0 {
		s.head = target.next
		target.release(s.alloc)
		s.free.release(target)
		if s.head == nil {
			s.tail = nil
		}
	}
	return nil
}

// Reset drops all buffered data, releasing every block and node.
// Idempotent on an empty sequence.
func (s *Sequence) Reset() {
	s.gen++
	for s.head != nil {
		next := s.head.next
		s.head.release(s.alloc)
		s.free.release(s.head)
		s.head = next
	}
	s.tail = nil
}

// appendSegment leases a block of at least min elements, wraps it in a
// node from the free-list and links it as the new tail. A tail that was
// requested but never committed into is replaced in place, so the chain
// carries no dead zero-length nodes; the replacement walks from head to
// find the predecessor, accepted because the path is rare.
func (s *Sequence) appendSegment(min int) (*segment, error) {
	block := s.alloc.Lease(min)
	if len(block) < min {
		return nil, api.NewError(api.ErrCodeInternal, "allocator returned undersized block").
			WithContext("min", min).
			WithContext("got", len(block))
	}
	node := s.free.acquire()
	node.configure(block, 0, 0)

	switch {
	case s.head == nil:
		s.head = node
		s.tail = node
	case s.tail.length() > 0:
		s.tail.link(node)
		s.tail = node
	default:
		// Replace the zero-length tail. Its block is released, so any
		// region handed out for it earlier is dead: views and pending
		// regions are invalidated here exactly as by ConsumeTo.
		stale := s.tail
		if stale == s.head {
			s.head = node
		} else {
			pred := s.head
			for pred.next != stale {
				pred = pred.next
			}
			pred.link(node)
		}
		s.tail = node
		stale.release(s.alloc)
		s.free.release(stale)
		s.gen++
	}
	return node, nil
}
