// File: pool/classpool.go
// Package pool implements lock-free block recycling with size class
// subpooling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-buf/api"
)

// Predefined buffer size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	64,
	256,
	1024,            // 1K
	4 * 1024,        // 4K
	16 * 1024,       // 16K
	64 * 1024,       // 64K
	256 * 1024,      // 256K
	1024 * 1024,     // 1M
	4 * 1024 * 1024, // 4M
}

// classFor returns the smallest class >= size, or 0 when size exceeds
// the largest class.
func classFor(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return 0
}

// DefaultRingCapacity bounds each per-class ring unless overridden.
const DefaultRingCapacity = 1024

// ClassPool is a bounded, size-classed allocator. Each class keeps
// released blocks in a lock-free ring; when a ring overflows, blocks go
// back to the arena. Oversize requests bypass the rings entirely.
// Safe for concurrent use.
type ClassPool struct {
	rings   map[int]*RingBuffer[[]byte]
	arena   Arena
	ringCap int

	leases   atomic.Int64
	releases atomic.Int64
	allocs   atomic.Int64

	classMu     sync.Mutex
	classCounts map[int]int64
}

// ClassOption customizes ClassPool initialization.
type ClassOption func(*ClassPool)

// WithRingCapacity bounds the per-class rings; rounded up to a power of
// two by the ring itself.
func WithRingCapacity(n int) ClassOption {
	return func(p *ClassPool) {
		p.ringCap = n
	}
}

// WithArena overrides the platform arena backing the pool.
func WithArena(a Arena) ClassOption {
	return func(p *ClassPool) {
		p.arena = a
	}
}

// NewClassPool creates a pool with one ring per size class.
func NewClassPool(opts ...ClassOption) *ClassPool {
	p := &ClassPool{
		arena:       newPlatformArena(),
		ringCap:     DefaultRingCapacity,
		classCounts: make(map[int]int64),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.rings = make(map[int]*RingBuffer[[]byte], len(sizeClasses))
	for _, c := range sizeClasses {
		p.rings[c] = NewRingBuffer[[]byte](p.ringCap)
	}
	return p
}

// Lease returns a block of the smallest class covering min, reusing a
// pooled block when one is parked. Requests past the largest class go
// straight to the arena.
func (p *ClassPool) Lease(min int) []byte {
	if min < 1 {
		min = 1
	}
	p.leases.Add(1)
	clz := classFor(min)
	if clz == 0 {
		p.allocs.Add(1)
		return p.arena.Alloc(min)
	}
	p.recordClass(clz)
	if block, ok := p.rings[clz].Dequeue(); ok {
		return block
	}
	p.allocs.Add(1)
	return p.arena.Alloc(clz)
}

// Release routes the block back to its class ring by capacity; blocks
// of no known class, and overflow past a full ring, return to the
// arena.
func (p *ClassPool) Release(block []byte) {
	if block == nil {
		return
	}
	p.releases.Add(1)
	if ring, ok := p.rings[cap(block)]; ok {
		if ring.Enqueue(block[:cap(block)]) {
			return
		}
	}
	p.arena.Free(block)
}

// Stats exposes lease/release accounting.
func (p *ClassPool) Stats() api.AllocatorStats {
	leases := p.leases.Load()
	releases := p.releases.Load()
	p.classMu.Lock()
	perClass := make(map[int]int64, len(p.classCounts))
	for k, v := range p.classCounts {
		perClass[k] = v
	}
	p.classMu.Unlock()
	return api.AllocatorStats{
		TotalLease:   leases,
		TotalRelease: releases,
		TotalAlloc:   p.allocs.Load(),
		InUse:        leases - releases,
		PerClass:     perClass,
	}
}

func (p *ClassPool) recordClass(clz int) {
	p.classMu.Lock()
	p.classCounts[clz]++
	p.classMu.Unlock()
}

var (
	_ api.Allocator     = (*ClassPool)(nil)
	_ api.StatsProvider = (*ClassPool)(nil)
)
