// File: array/array.go
// Package array provides a fully-initialized, fixed-length heap array.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Array is the safe layer over lazy.Array: every slot is initialized at
// construction and stays initialized until Close, so no operation here
// carries an initialization precondition.

package array

import (
	"iter"

	"github.com/momentics/hioload-mem/lazy"
)

// Array is a fixed-length collection whose slots are always initialized.
type Array[T any] struct {
	slots *lazy.Array[T]
}

// New builds an Array of the given length, initializing slot i to fill(i).
// Panics on negative length.
func New[T any](length int, fill func(i int) T) *Array[T] {
	elems := make([]T, length)
	for i := range elems {
		elems[i] = fill(i)
	}
	return From(elems)
}

// From builds an Array holding a copy of elems.
func From[T any](elems []T) *Array[T] {
	slots := lazy.New[T](len(elems))
	slots.WriteSlice(0, elems)
	return &Array[T]{slots: slots}
}

// Len returns the fixed length.
func (a *Array[T]) Len() int { return a.slots.Cap() }

// Get returns the element at index i. Panics if i is out of range.
func (a *Array[T]) Get(i int) T {
	return a.slots.AssumeInit(i, 1)[0]
}

// Set replaces the element at index i, tearing down the old value.
// Panics if i is out of range.
func (a *Array[T]) Set(i int, v T) {
	a.slots.OverwriteSlice(i, []T{v})
}

// Slice returns the view over all elements, valid until Close.
func (a *Array[T]) Slice() []T {
	return a.slots.AssumeInit(0, a.Len())
}

// Values iterates elements in index order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Close tears down every element and releases the storage.
func (a *Array[T]) Close() {
	a.slots.AssumeInitDrop(0, a.Len())
	a.slots.Close()
}
