// File: internal/mem/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"fmt"
	"os"

	"github.com/momentics/hioload-mem/api"
)

// Region is a contiguous raw allocation of at least the requested size,
// rounded up to the page size when mapped. Contents start zeroed but carry
// no type: callers layer their own element views on top.
type Region struct {
	data     []byte
	mapped   bool
	released bool
}

// Bytes returns the raw backing bytes. Invalid after Release.
func (r *Region) Bytes() []byte { return r.data }

// Len returns the usable size in bytes.
func (r *Region) Len() int { return len(r.data) }

// Mapped reports whether the region is backed by an OS mapping rather than
// the Go heap.
func (r *Region) Mapped() bool { return r.mapped }

// Release returns the region to the OS (or the GC for heap fallbacks).
// The region must not be used afterward.
func (r *Region) Release() error {
	if r.released {
		return api.ErrRegionReleased
	}
	r.released = true
	data := r.data
	r.data = nil
	if r.mapped {
		return unmap(data)
	}
	return nil
}

// pageAlign rounds n up to the next multiple of the OS page size.
func pageAlign(n int) int {
	page := os.Getpagesize()
	return (n + page - 1) / page * page
}

func checkSize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("mem: negative region size %d", n))
	}
}
