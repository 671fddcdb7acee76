//go:build windows

package gc

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// osRequest reserves and commits a private region with VirtualAlloc, the
// Windows analogue of the Unix mmap path in heap_unix.go.
func osRequest(size uintptr) ([]byte, bool) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, false
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), true
}
