// Package ring
// Author: momentics <momentics@gmail.com>
//
// Capacity-bounded, insertion-ordered sequence over lazy slot storage.
// Appending past capacity evicts the oldest elements by overwriting them in
// place; content is exposed as at most two contiguous views, so nothing is
// ever shifted. Eviction never runs element teardown, which is why
// construction refuses element types that implement api.Disposable.
package ring
