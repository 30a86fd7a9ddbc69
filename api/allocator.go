// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Allocator contract for leased fixed-capacity blocks.

package api

// Allocator leases fixed-capacity byte blocks and reclaims them.
//
// A leased block has len == cap; its capacity never changes over the
// lease. Ownership of a block transfers to the caller on Lease and back
// to the allocator on Release, exactly once per lease. Thread safety is
// the implementation's concern: the pool allocators in this module are
// safe for concurrent use, consumers of the contract must not assume
// more than it states.
type Allocator interface {
	// Lease returns a block with len(block) == cap(block) >= min.
	Lease(min int) []byte

	// Release returns a block to the allocator. The block must have been
	// obtained from this allocator and must not be used after Release.
	Release(block []byte)
}

// StatsProvider is implemented by allocators that track accounting.
type StatsProvider interface {
	Stats() AllocatorStats
}

// AllocatorStats aggregates lease/release accounting.
type AllocatorStats struct {
	// TotalLease counts blocks handed out.
	TotalLease int64
	// TotalRelease counts blocks returned.
	TotalRelease int64
	// TotalAlloc counts fresh blocks created (pool misses). A pool hit
	// serves a lease without growing TotalAlloc.
	TotalAlloc int64
	// InUse is TotalLease - TotalRelease.
	InUse int64
	// PerClass maps size class -> leases served from that class.
	PerClass map[int]int64
}
