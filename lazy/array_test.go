package lazy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-mem/lazy"
)

// resource is an owning element type; Dispose bumps the shared counter.
type resource struct {
	id    int
	drops *int
}

func (r *resource) Dispose() { *r.drops++ }

func mkResources(n int, drops *int) []resource {
	out := make([]resource, n)
	for i := range out {
		out[i] = resource{id: i + 1, drops: drops}
	}
	return out
}

func TestWriteSliceRoundTrip(t *testing.T) {
	a := lazy.New[int](10)
	defer a.Close()

	elems := []int{4, 8, 15, 16, 23, 42}
	written := a.WriteSlice(2, elems)
	require.Equal(t, elems, written)
	require.Equal(t, elems, a.AssumeInit(2, len(elems)))
}

func TestWriteSliceDoesNotDispose(t *testing.T) {
	a := lazy.New[resource](4)
	defer a.Close()

	var drops int
	a.WriteSlice(0, mkResources(4, &drops))
	a.WriteSlice(0, mkResources(4, &drops))
	require.Zero(t, drops, "WriteSlice must leak, not dispose")
}

func TestOverwriteReplacesAndDisposesOld(t *testing.T) {
	a := lazy.New[resource](4)
	defer a.Close()

	var drops int
	a.WriteSlice(0, mkResources(4, &drops))

	repl := mkResources(4, &drops)
	for i := range repl {
		repl[i].id += 100
	}
	got := a.OverwriteSlice(0, repl)

	require.Equal(t, 4, drops, "every old element disposed exactly once")
	for i, r := range got {
		require.Equal(t, i+101, r.id)
	}
	require.Equal(t, repl, a.AssumeInit(0, 4))
}

func TestAssumeInitDropDisposesOnce(t *testing.T) {
	a := lazy.New[resource](8)
	defer a.Close()

	var drops int
	a.WriteSlice(0, mkResources(6, &drops))
	a.AssumeInitDrop(2, 3)
	require.Equal(t, 3, drops)

	// Slots outside the dropped range stay live.
	require.Equal(t, 2, a.AssumeInit(1, 1)[0].id)
	require.Equal(t, 6, a.AssumeInit(5, 1)[0].id)
}

func TestMutationThroughView(t *testing.T) {
	a := lazy.New[int](5)
	defer a.Close()

	a.WriteSlice(0, []int{1, 2, 3, 4, 5})
	view := a.AssumeInit(0, 5)
	for i := range view {
		view[i] *= 10
	}
	require.Equal(t, []int{10, 20, 30, 40, 50}, a.AssumeInit(0, 5))
}

func TestBoundsPanics(t *testing.T) {
	a := lazy.New[int](10)
	defer a.Close()
	a.WriteSlice(0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	require.Panics(t, func() { a.AssumeInit(5, 6) })
	require.Panics(t, func() { a.AssumeInit(-1, 2) })
	require.Panics(t, func() { a.AssumeInit(0, -1) })
	require.Panics(t, func() { a.AssumeInitDrop(10, 1) })
	require.Panics(t, func() { a.WriteSlice(8, []int{1, 2, 3}) })
	require.Panics(t, func() { a.OverwriteSlice(9, []int{1, 2}) })
	require.Panics(t, func() { a.CopySlice(6, []int{1, 2, 3, 4, 5}) })

	// A rejected write touches nothing.
	require.Equal(t, []int{8, 9}, a.AssumeInit(8, 2))
}

func TestNegativeCapacityPanics(t *testing.T) {
	require.Panics(t, func() { lazy.New[int](-1) })
}

func TestCopySliceRejectsDisposable(t *testing.T) {
	a := lazy.New[resource](4)
	defer a.Close()

	require.Panics(t, func() { a.CopySlice(0, make([]resource, 2)) })
}

func TestCopySliceRoundTrip(t *testing.T) {
	a := lazy.New[float64](6)
	defer a.Close()

	elems := []float64{1.5, 2.5, 3.5}
	require.Equal(t, elems, a.CopySlice(3, elems))
	require.Equal(t, elems, a.AssumeInit(3, 3))
}

func TestZeroCapacity(t *testing.T) {
	a := lazy.New[int](0)
	defer a.Close()

	require.Zero(t, a.Cap())
	require.Empty(t, a.AssumeInit(0, 0))
	require.Panics(t, func() { a.AssumeInit(0, 1) })
}

func TestZeroSizedElements(t *testing.T) {
	a := lazy.New[struct{}](16)
	defer a.Close()

	written := a.CopySlice(4, make([]struct{}, 8))
	require.Len(t, written, 8)
	require.Len(t, a.AssumeInit(4, 8), 8)
}

func TestMappedRoundTrip(t *testing.T) {
	a := lazy.New[int64](1024, lazy.Mapped())
	defer a.Close()

	elems := make([]int64, 1024)
	for i := range elems {
		elems[i] = int64(i * i)
	}
	a.CopySlice(0, elems)
	require.Equal(t, elems, a.AssumeInit(0, len(elems)))
}

func TestMappedRejectsPointerElements(t *testing.T) {
	require.Panics(t, func() { lazy.New[string](8, lazy.Mapped()) })
	require.Panics(t, func() { lazy.New[[]byte](8, lazy.Mapped()) })
	require.Panics(t, func() { lazy.New[*int](8, lazy.Mapped()) })
}

func TestMappedStructElements(t *testing.T) {
	type sample struct {
		Seq uint64
		Val float64
	}
	a := lazy.New[sample](128, lazy.Mapped())
	defer a.Close()

	elems := []sample{{Seq: 1, Val: 0.5}, {Seq: 2, Val: 1.5}}
	a.CopySlice(100, elems)
	require.Equal(t, elems, a.AssumeInit(100, 2))
}
