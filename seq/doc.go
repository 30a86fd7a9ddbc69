// Package seq implements a growable, segment-chained accumulation
// buffer. Producers request writable regions and commit into them
// without knowing the final size; consumers read everything committed
// so far as one logical range without copying, then tell the sequence
// how far they got. Fully consumed segments return their blocks to the
// allocator and their nodes to an internal free-list.
//
// A Sequence is single-goroutine confined: it performs no locking and
// no operation blocks. Hand it between goroutines with external
// synchronization or not at all.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package seq
