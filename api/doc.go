// Package api defines the pure contracts of hioload-buf:
// the allocator lease/release interface, structured errors,
// accounting stats, and the lock-free ring contract used by pools.
//
// No package in api carries implementation logic; all concrete types
// live in seq, pool, fake and control.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package api
