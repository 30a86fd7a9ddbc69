// File: pool/arena.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral backing store for class pools. The concrete arena is
// selected at build time through platform-specific files.

package pool

// Arena provides raw blocks when a class ring runs dry and takes back
// blocks the ring cannot hold. Blocks handed to Free must originate
// from the same arena.
type Arena interface {
	Alloc(n int) []byte
	Free(b []byte)
}

// heapArena is the fallback arena: plain Go heap, frees left to the GC.
type heapArena struct{}

func (heapArena) Alloc(n int) []byte { return make([]byte, n) }
func (heapArena) Free([]byte)        {}

// HeapArena returns an arena on the Go heap, useful when mmap-backed
// storage is undesirable.
func HeapArena() Arena { return heapArena{} }
