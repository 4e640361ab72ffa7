// File: api/slots.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts for fixed-capacity, caller-managed slot storage.

package api

import "reflect"

// Disposable is implemented by element types that own a resource requiring
// explicit release (file handles, pooled buffers, mapped regions).
// Containers never call Dispose on their own; only the operations documented
// to tear slots down do. An element type that does not implement Disposable
// is flatly duplicable: its values are copied by plain assignment and need
// no teardown.
type Disposable interface {
	Dispose()
}

// Slots is the contract for fixed-capacity storage where slot initialization
// is tracked by the caller, not the container. Every range is validated
// against capacity and violations panic; initialization assumptions are
// documented per operation and never checked at runtime.
type Slots[T any] interface {
	// Cap returns the fixed slot count.
	Cap() int

	// AssumeInit returns a view over slots [index, index+n).
	// Caller guarantees every slot in range is initialized.
	AssumeInit(index, n int) []T

	// AssumeInitDrop tears down slots [index, index+n), assuming all
	// are initialized. The slots are uninitialized afterward.
	AssumeInitDrop(index, n int)

	// WriteSlice initializes slots starting at index from elems without
	// tearing down prior contents. Live destination values leak.
	WriteSlice(index int, elems []T) []T

	// OverwriteSlice tears down each destination slot, then writes.
	// Caller guarantees the destination range is initialized.
	OverwriteSlice(index int, elems []T) []T

	// CopySlice bulk-copies elems into slots starting at index with no
	// teardown step. Only for non-Disposable element types.
	CopySlice(index int, elems []T) []T

	// Close releases the backing storage without tearing down elements.
	Close()
}

// Ring is the contract for a capacity-bounded, insertion-ordered sequence
// that evicts oldest elements on overflow. See the ring package.
// (The iterator form lives on the concrete type; contracts stay minimal.)
type Ring[T any] interface {
	// Append adds a batch, evicting oldest elements as needed.
	// Returns the number of elements actually written.
	Append(elems []T) int
	// AsSlices returns the content as two ordered contiguous views.
	AsSlices() ([]T, []T)
	// Len returns the current number of live elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
}

// IsDisposable reports whether T or *T implements Disposable. Containers
// whose algorithms skip teardown use this to refuse owning element types
// at construction time.
func IsDisposable[T any]() bool {
	d := reflect.TypeOf((*Disposable)(nil)).Elem()
	t := reflect.TypeFor[T]()
	return t.Implements(d) || reflect.PointerTo(t).Implements(d)
}
