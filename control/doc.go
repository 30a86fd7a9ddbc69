// Package control provides runtime observability for hioload-buf:
// a thread-safe metrics registry and helpers that publish allocator
// accounting into it.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package control
