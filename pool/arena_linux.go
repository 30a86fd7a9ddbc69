//go:build linux

// File: pool/arena_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux arena backed by anonymous private mappings. Page-multiple
// blocks stay off the Go heap entirely; anything else falls back to the
// heap, since a partial page cannot be unmapped on its own.

package pool

import (
	"os"

	"golang.org/x/sys/unix"
)

var pageSize = os.Getpagesize()

type mmapArena struct{}

func newPlatformArena() Arena { return mmapArena{} }

func (mmapArena) Alloc(n int) []byte {
	if n <= 0 || n%pageSize != 0 {
		return make([]byte, n)
	}
	b, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		// Heap fallback carries one spare capacity byte so Free can
		// tell it apart from a mapping.
		return make([]byte, n, n+1)
	}
	return b
}

// Free unmaps mapped blocks; heap-allocated ones (off-page capacity)
// are left to the GC.
func (mmapArena) Free(b []byte) {
	if cap(b) == 0 || cap(b)%pageSize != 0 {
		return
	}
	_ = unix.Munmap(b[:cap(b)])
}
