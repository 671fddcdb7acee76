package gc

import "unsafe"

// osRequest(size uintptr) ([]byte, bool) asks the operating system for a
// contiguous byte range of at least size bytes. It returns the backing
// allocation (kept alive by the chunk that wraps it) and whether the
// request succeeded. Implemented per GOOS in heap_unix.go, heap_windows.go
// and heap_portable.go, which are mutually exclusive via build constraints.
//
// A failed request propagates as a false return, never a panic: requests
// beyond OS capacity are a transient condition the mutator must be able to
// recover from.

// addHeap acquires a new chunk of at least reqSize payload bytes, rounding
// up to TinyHeapSize, and records it in the chunk registry. It returns the
// header of a single free block spanning the whole chunk, or nil on OS
// exhaustion.
func addHeap(reqSize uintptr) *header {
	if reqSize < TinyHeapSize {
		reqSize = TinyHeapSize
	}

	mem, ok := osRequest(reqSize + ptrSize + headerSize)
	if !ok {
		return nil
	}

	base := alignUp(uintptr(unsafe.Pointer(&mem[0])))
	h := (*header)(unsafe.Pointer(base))
	h.size = reqSize
	h.nextFree = h

	addChunk(chunk{slot: h, size: reqSize, mem: mem})
	return h
}

// grow converts a freshly requested chunk into a free block and threads it
// into the free list via Free, the same integration path an explicit free
// call would take.
func grow(reqSize uintptr) *header {
	h := addHeap(reqSize)
	if h == nil {
		return nil
	}
	if freeList == nil {
		freeList = h
		return h
	}
	Free(h.payload())
	return freeList
}
