// Package pool
// Author: momentics <momentics@gmail.com>
//
// Allocator implementations for hioload-buf.
// ClassPool is the bounded, lock-free, size-classed allocator with an
// optional mmap arena backing; QueuePool is the unbounded FIFO variant.
// Both implement api.Allocator and expose lease/release accounting.
// See classpool.go, queuepool.go, ring.go for implementation details.
package pool
