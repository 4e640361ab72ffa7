// File: internal/mem/map_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Anonymous private mappings via x/sys. Falls back to the Go heap when the
// kernel refuses the mapping, so Map never fails.

package mem

import "golang.org/x/sys/unix"

// Map allocates a region of at least n bytes, rounded up to page size.
func Map(n int) *Region {
	checkSize(n)
	if n == 0 {
		return &Region{}
	}
	size := pageAlign(n)
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return &Region{data: make([]byte, size)}
	}
	return &Region{data: data, mapped: true}
}

func unmap(data []byte) error {
	return unix.Munmap(data)
}
