// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for hioload-mem. Bounds and contract violations are
// reported by panic at the call site, never through these values; sentinels
// cover only the recoverable allocator paths.

package api

import "fmt"

var (
	ErrRegionReleased = fmt.Errorf("memory region already released")
)
