// File: lazy/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lazy

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/mem"
)

// Ensure compile-time interface compliance.
var _ api.Slots[any] = (*Array[any])(nil)

// Array is fixed-capacity slot storage with no intrinsic initialization
// tracking. Each slot independently holds a live T or stale storage; which
// is which is the caller's bookkeeping. All indexing is bounds-checked and
// panics on violation, before any slot is touched. Initialization
// assumptions are documented per method and never checked.
//
// Not safe for concurrent mutation; callers synchronize externally.
type Array[T any] struct {
	slots      []T
	region     *mem.Region // non-nil only for Mapped backing
	disposable bool        // element type implements api.Disposable
}

// New allocates an Array with the given slot count. All slots start
// uninitialized. Panics on negative capacity, and with Mapped on
// pointer-bearing element types.
func New[T any](capacity int, opts ...Option) *Array[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("lazy: negative capacity %d", capacity))
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Array[T]{disposable: api.IsDisposable[T]()}

	elem := reflect.TypeFor[T]()
	size := int(elem.Size())
	if !cfg.mapped || capacity == 0 || size == 0 {
		a.slots = make([]T, capacity)
		return a
	}

	if hasPointers(elem) {
		panic(fmt.Sprintf("lazy: mapped backing for pointer-bearing element type %s", elem))
	}
	if capacity > math.MaxInt/size {
		panic(fmt.Sprintf("lazy: capacity %d overflows region size", capacity))
	}
	a.region = mem.Map(capacity * size)
	a.slots = unsafe.Slice((*T)(unsafe.Pointer(&a.region.Bytes()[0])), capacity)
	return a
}

// Cap returns the fixed slot count.
func (a *Array[T]) Cap() int { return len(a.slots) }

// AssumeInit returns the view over slots [index, index+n).
//
// Caller guarantees every slot in range is initialized; that is never
// checked. The returned slice aliases the backing storage, so callers that
// mutate through it must hold exclusive access for the duration of use.
// Panics if the range exceeds capacity.
func (a *Array[T]) AssumeInit(index, n int) []T {
	a.checkRange(index, n)
	return a.slots[index : index+n : index+n]
}

// AssumeInitDrop tears down slots [index, index+n), assuming all are
// initialized. Elements implementing api.Disposable are disposed; the range
// is then cleared so dropped slots pin nothing. The slots are uninitialized
// afterward, though the Array keeps no record of it.
// Panics if the range exceeds capacity.
func (a *Array[T]) AssumeInitDrop(index, n int) {
	a.checkRange(index, n)
	if a.disposable {
		for i := index; i < index+n; i++ {
			a.dispose(i)
		}
	}
	clear(a.slots[index : index+n])
}

// WriteSlice initializes slots starting at index with copies of elems,
// without tearing down whatever the slots held before. Intended for
// first-time initialization: using it on live slots leaks their values
// (their Dispose is never called). Use OverwriteSlice when the destination
// may already be live. Returns the newly written view.
// Panics if the destination range exceeds capacity.
func (a *Array[T]) WriteSlice(index int, elems []T) []T {
	a.checkRange(index, len(elems))
	dst := a.slots[index : index+len(elems) : index+len(elems)]
	copy(dst, elems)
	return dst
}

// OverwriteSlice tears down each destination slot, then writes copies of
// elems. Caller guarantees the destination range is initialized.
// Returns the newly written view.
// Panics if the destination range exceeds capacity.
func (a *Array[T]) OverwriteSlice(index int, elems []T) []T {
	a.checkRange(index, len(elems))
	dst := a.slots[index : index+len(elems) : index+len(elems)]
	for i := range dst {
		if a.disposable {
			a.dispose(index + i)
		}
		dst[i] = elems[i]
	}
	return dst
}

// CopySlice bulk-copies elems into slots starting at index with no teardown
// step. Restricted to non-Disposable element types: with no resource to
// release, stale destination bits can simply be replaced. Returns the newly
// written view.
// Panics for Disposable element types or an out-of-range destination.
func (a *Array[T]) CopySlice(index int, elems []T) []T {
	if a.disposable {
		panic(fmt.Sprintf("lazy: CopySlice on disposable element type %s", reflect.TypeFor[T]()))
	}
	a.checkRange(index, len(elems))
	dst := a.slots[index : index+len(elems) : index+len(elems)]
	copy(dst, elems)
	return dst
}

// Close releases the backing storage. Elements are never torn down here:
// slots still live at Close leak, which is the documented cost of skipping
// the bookkeeping, not a safety violation. The Array must not be used
// afterward.
func (a *Array[T]) Close() {
	a.slots = nil
	if a.region != nil {
		a.region.Release()
		a.region = nil
	}
}

func (a *Array[T]) checkRange(index, n int) {
	if index < 0 || n < 0 || index > len(a.slots)-n {
		panic(fmt.Sprintf("lazy: range [%d:%d) out of bounds for capacity %d", index, index+n, len(a.slots)))
	}
}

func (a *Array[T]) dispose(i int) {
	if d, ok := any(&a.slots[i]).(api.Disposable); ok {
		d.Dispose()
		return
	}
	if d, ok := any(a.slots[i]).(api.Disposable); ok {
		d.Dispose()
	}
}

// hasPointers reports whether values of t contain Go pointers the collector
// would need to scan.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
