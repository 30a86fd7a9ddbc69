// File: seq/options.go
// Package seq defines functional options for Sequence initialization.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package seq

// Option customizes Sequence initialization.
type Option func(*Sequence)

// WithChunkSize sets the lease size used when a write request carries
// no size hint and the tail has no slack. Must be positive.
func WithChunkSize(n int) Option {
	return func(s *Sequence) {
		s.chunkSize = n
	}
}

// WithFreeListCap bounds the retired-node pool. Zero keeps it
// unbounded; past a positive cap, retired nodes are dropped to the GC.
func WithFreeListCap(n int) Option {
	return func(s *Sequence) {
		s.free.cap = n
	}
}
