// File: internal/mem/map_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

// Map allocates a region of at least n bytes from the Go heap.
func Map(n int) *Region {
	checkSize(n)
	if n == 0 {
		return &Region{}
	}
	return &Region{data: make([]byte, pageAlign(n))}
}

func unmap(data []byte) error { return nil }
