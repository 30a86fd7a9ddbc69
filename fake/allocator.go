// Package fake
// Author: momentics <momentics@gmail.com>
//
// Counting fake allocator for testing sequence recycling behavior.

package fake

import (
	"sync"

	"github.com/momentics/hioload-buf/api"
)

// Allocator is a counting fake of api.Allocator. Every Lease allocates
// a fresh block so tests can observe exactly how many blocks a scenario
// costs; Release only counts. With NominalCap set, blocks have that
// capacity unless the request needs more, which lets tests force
// segment boundaries at known points.
type Allocator struct {
	NominalCap int

	mu       sync.Mutex
	leases   int64
	releases int64
}

// NewAllocator creates a counting allocator with no nominal capacity.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Lease returns a fresh block of max(min, NominalCap) bytes.
func (a *Allocator) Lease(min int) []byte {
	if min < 1 {
		min = 1
	}
	n := min
	if a.NominalCap > n {
		n = a.NominalCap
	}
	a.mu.Lock()
	a.leases++
	a.mu.Unlock()
	return make([]byte, n)
}

// Release counts the return; the block is left to the GC.
func (a *Allocator) Release(block []byte) {
	if block == nil {
		return
	}
	a.mu.Lock()
	a.releases++
	a.mu.Unlock()
}

// LeaseCount reports blocks handed out.
func (a *Allocator) LeaseCount() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.leases
}

// ReleaseCount reports blocks returned.
func (a *Allocator) ReleaseCount() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.releases
}

// Outstanding reports blocks currently on lease.
func (a *Allocator) Outstanding() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.leases - a.releases
}

// Stats mirrors the counters in api form. A fake never pools, so
// TotalAlloc always equals TotalLease.
func (a *Allocator) Stats() api.AllocatorStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return api.AllocatorStats{
		TotalLease:   a.leases,
		TotalRelease: a.releases,
		TotalAlloc:   a.leases,
		InUse:        a.leases - a.releases,
	}
}

var (
	_ api.Allocator     = (*Allocator)(nil)
	_ api.StatsProvider = (*Allocator)(nil)
)
