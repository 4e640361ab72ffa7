// Package mem
// Author: momentics <momentics@gmail.com>
//
// Page-granular raw memory regions for container backing storage.
// On Linux regions come from anonymous private mmap with a Go-heap fallback;
// other platforms allocate from the Go heap directly.
package mem
