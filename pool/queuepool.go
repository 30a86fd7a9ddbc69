// File: pool/queuepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded size-classed allocator. Each class keeps a FIFO of released
// blocks; the pool never evicts, trading memory for a hard guarantee
// that steady-state traffic stops hitting the heap.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-buf/api"
)

// QueuePool recycles blocks through per-class FIFO queues under one
// mutex. Safe for concurrent use.
type QueuePool struct {
	mu      sync.Mutex
	classes map[int]*queue.Queue

	leases   atomic.Int64
	releases atomic.Int64
	allocs   atomic.Int64

	classMu     sync.Mutex
	classCounts map[int]int64
}

// NewQueuePool creates an empty pool covering the standard class table.
func NewQueuePool() *QueuePool {
	return &QueuePool{
		classes:     make(map[int]*queue.Queue, len(sizeClasses)),
		classCounts: make(map[int]int64),
	}
}

// Lease returns a block of the smallest class covering min, reusing the
// oldest parked block of that class when one exists.
func (p *QueuePool) Lease(min int) []byte {
	if min < 1 {
		min = 1
	}
	p.leases.Add(1)
	clz := classFor(min)
	if clz == 0 {
		p.allocs.Add(1)
		return make([]byte, min)
	}
	p.recordClass(clz)
	p.mu.Lock()
	q := p.classes[clz]
	if q != nil && q.Length() > 0 {
		block := q.Remove().([]byte)
		p.mu.Unlock()
		return block
	}
	p.mu.Unlock()
	p.allocs.Add(1)
	return make([]byte, clz)
}

// Release parks the block in its class queue; blocks of no known class
// are left to the GC.
func (p *QueuePool) Release(block []byte) {
	if block == nil {
		return
	}
	p.releases.Add(1)
	clz := cap(block)
	if classFor(clz) != clz {
		return
	}
	p.mu.Lock()
	q := p.classes[clz]
	if q == nil {
		q = queue.New()
		p.classes[clz] = q
	}
	q.Add(block[:cap(block)])
	p.mu.Unlock()
}

// Stats exposes lease/release accounting.
func (p *QueuePool) Stats() api.AllocatorStats {
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

func (p *QueuePool) recordClass(clz int) {
	p.classMu.Lock()
	p.classCounts[clz]++
	p.classMu.Unlock()
}

var (
	_ api.Allocator     = (*QueuePool)(nil)
	_ api.StatsProvider = (*QueuePool)(nil)
)
