// File: seq/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LIFO free-list of retired segment nodes. Node reuse is independent of
// block reuse: blocks go back to the allocator, nodes stay here.

package seq

// freeList stacks cleared segment nodes for reuse, chained through the
// nodes' own next pointers. With cap == 0 the list never evicts; a
// positive cap drops surplus nodes to the GC.
type freeList struct {
	top  *segment
	size int
	cap  int
}

// acquire pops a node or constructs a new one when the list is empty.
func (f *freeList) acquire() *segment {
	if f.top == nil {
		return &segment{}
	}
	n := f.top
	f.top = n.next
	n.next = nil
	f.size--
	return n
}

// release pushes a cleared node. Past the cap the node is dropped.
func (f *freeList) release(n *segment) {
	if f.cap > 0 && f.size >= f.cap {
		return
	}
	n.next = f.top
	f.top = n
	f.size++
}

// len reports how many nodes are parked.
func (f *freeList) len() int { return f.size }
