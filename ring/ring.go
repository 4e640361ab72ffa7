// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/lazy"
)

// Ensure compile-time interface compliance.
var _ api.Ring[int] = (*Array[int])(nil)

// Array is a fixed-capacity circular buffer built on one lazy.Array plus two
// counters. length counts live elements; next is the slot the next append
// starts at. Until the buffer wraps (length < capacity) content occupies
// slots [0, length) and next == length; once full, content runs [next,
// capacity) then [0, next). The two counters are the only initialization
// bookkeeping the underlying slots get.
//
// Not safe for concurrent mutation; callers synchronize externally.
type Array[T any] struct {
	length int
	next   int
	slots  *lazy.Array[T]
}

// New builds a ring of the given capacity. Capacity 0 is legal and yields a
// permanently empty ring. Element types implementing api.Disposable are
// refused: eviction overwrites slots without teardown, so an owning element
// type would leak on every eviction.
func New[T any](capacity int, opts ...lazy.Option) *Array[T] {
	if api.IsDisposable[T]() {
		panic(fmt.Sprintf("ring: disposable element type %s", reflect.TypeFor[T]()))
	}
	return &Array[T]{slots: lazy.New[T](capacity, opts...)}
}

// Append adds a batch of elements, evicting the oldest as needed to respect
// capacity. When the batch itself exceeds capacity only its final capacity
// elements are written; the skipped prefix would be evicted before it could
// ever be observed. Returns the number of elements written, so callers can
// recover the skipped count as len(elems) minus the result.
func (r *Array[T]) Append(elems []T) int {
	capacity := r.slots.Cap()
	if capacity == 0 || len(elems) == 0 {
		return 0
	}
	if len(elems) > capacity {
		elems = elems[len(elems)-capacity:]
	}

	room := capacity - r.next
	if len(elems) < room {
		r.slots.CopySlice(r.next, elems)
		r.next += len(elems)
		r.length = min(r.length+len(elems), capacity)
		return len(elems)
	}

	// The batch reaches the end of storage: fill to the end, wrap the rest
	// to slot 0. A wrap always leaves the ring full.
	head, tail := elems[:room], elems[room:]
	r.slots.CopySlice(r.next, head)
	r.slots.CopySlice(0, tail)
	r.next = len(tail)
	r.length = capacity
	return len(elems)
}

// AsSlices returns the content as two contiguous views whose concatenation
// is the full sequence in insertion order. Before the ring wraps the second
// view is empty. Views alias ring storage and are valid until the next
// Append or Close.
func (r *Array[T]) AsSlices() ([]T, []T) {
	capacity := r.slots.Cap()
	if r.length < capacity {
		return r.slots.AssumeInit(0, r.length), nil
	}
	return r.slots.AssumeInit(r.next, capacity-r.next), r.slots.AssumeInit(0, r.next)
}

// Values iterates the content in insertion order. The sequence is
// restartable; reuse between mutations yields identical content.
func (r *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		head, tail := r.AsSlices()
		for _, v := range head {
			if !yield(v) {
				return
			}
		}
		for _, v := range tail {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of live elements.
func (r *Array[T]) Len() int { return r.length }

// Cap returns the fixed capacity.
func (r *Array[T]) Cap() int { return r.slots.Cap() }

// Close releases the backing storage. The ring must not be used afterward.
func (r *Array[T]) Close() {
	r.slots.Close()
	r.length, r.next = 0, 0
}
