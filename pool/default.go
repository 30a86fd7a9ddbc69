// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/hioload-buf/api"
)

var (
	defaultOnce sync.Once
	defaultPool *ClassPool
)

// DefaultAllocator returns a process-wide ClassPool so all sequences
// reuse the same class rings instead of fragmenting allocations.
func DefaultAllocator() api.Allocator {
	defaultOnce.Do(func() {
		defaultPool = NewClassPool()
	})
	return defaultPool
}
