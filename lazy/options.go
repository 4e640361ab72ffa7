// File: lazy/options.go
// Package lazy defines functional options for Array construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lazy

// Option customizes Array construction.
type Option func(*config)

type config struct {
	mapped bool
}

// Mapped backs the slots with a page-aligned OS mapping instead of the Go
// heap. Only pointer-free element types are accepted: the collector cannot
// scan a mapped region, so a Go pointer stored there would not keep its
// referent alive. New panics on pointer-bearing element types.
func Mapped() Option {
	return func(c *config) {
		c.mapped = true
	}
}
