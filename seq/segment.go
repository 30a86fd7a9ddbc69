// File: seq/segment.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Segment node: one leased block plus the active window within it.

package seq

import "github.com/momentics/hioload-buf/api"

// segment pairs one leased block with the sub-range of it currently
// holding data. Invariant: 0 <= start <= end <= len(block).
// runningIndex is the cumulative element count of all segments linked
// before this one, stamped at link time. The forward link belongs to
// the owning Sequence's chain, not to the node itself.
type segment struct {
	block        []byte
	start        int
	end          int
	runningIndex int64
	next         *segment
}

// configure binds a fresh or recycled node to a leased block and active
// range. Precondition: end <= len(block). Resets runningIndex and the
// forward link.
func (s *segment) configure(block []byte, start, end int) {
	s.block = block
	s.start = start
	s.end = end
	s.runningIndex = 0
	s.next = nil
}

// grow extends the active window to newEnd.
func (s *segment) grow(newEnd int) error {
	if newEnd > len(s.block) {
		return api.NewError(api.ErrCodeOutOfRange, "commit exceeds block capacity").
			WithContext("newEnd", newEnd).
			WithContext("capacity", len(s.block))
	}
	s.end = newEnd
	return nil
}

// trim advances the active start to offset.
func (s *segment) trim(offset int) error {
	if offset > s.end {
		return api.NewError(api.ErrCodeOutOfRange, "trim exceeds committed data").
			WithContext("offset", offset).
			WithContext("end", s.end)
	}
	s.start = offset
	return nil
}

// release returns the block to the allocator and clears the node for
// free-list reuse. Called exactly once per lease, when the segment is
// recycled.
func (s *segment) release(alloc api.Allocator) {
	if s.block != nil {
		alloc.Release(s.block)
	}
	s.block = nil
	s.start = 0
	s.end = 0
	s.runningIndex = 0
	s.next = nil
}

// link chains next after s and stamps its running index.
func (s *segment) link(next *segment) {
	s.next = next
	next.runningIndex = s.runningIndex + int64(s.end)
}

// length is the number of active elements.
func (s *segment) length() int { return s.end - s.start }

// writable is the unused capacity past the active window.
func (s *segment) writable() int { return len(s.block) - s.end }

// trailing is the unused tail of the block, offered to writers before
// commit.
func (s *segment) trailing() []byte { return s.block[s.end:] }
