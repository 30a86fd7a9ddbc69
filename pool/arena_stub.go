//go:build !linux

// File: pool/arena_stub.go
// Author: momentics <momentics@gmail.com>
//
// Non-Linux platforms run class pools on the Go heap.

package pool

func newPlatformArena() Arena { return heapArena{} }
