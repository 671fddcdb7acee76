package gc

import "unsafe"

const (
	flagAlloc uintptr = 1 << 0
	flagMark  uintptr = 1 << 1
)

// header precedes every block in the heap, allocated or free. Its address is
// always aligned to the pointer size, and the payload occupies exactly
// size bytes immediately following it.
type header struct {
	flags    uintptr
	size     uintptr // payload size in bytes, not counting this header
	nextFree *header // valid only while the block is free; undefined otherwise
}

var headerSize = unsafe.Sizeof(header{})

// headerFromPayload recovers the header preceding a pointer previously
// returned by Allocate.
func headerFromPayload(ptr unsafe.Pointer) *header {
	return (*header)(unsafe.Pointer(uintptr(ptr) - headerSize))
}

// payload returns the address immediately following h, where its data lives.
func (h *header) payload() unsafe.Pointer {
	return unsafe.Pointer(uintptr(unsafe.Pointer(h)) + headerSize)
}

// nextHeader returns the header immediately following h's payload. This is
// the NEXT_HEADER macro of the reference implementation: it depends on h's
// current size field, so callers that mutate h's size (splitting, merging)
// must take care about when they call this relative to that mutation.
func (h *header) nextHeader() *header {
	return (*header)(unsafe.Pointer(uintptr(unsafe.Pointer(h)) + headerSize + h.size))
}

func (h *header) alloc() bool  { return h.flags&flagAlloc != 0 }
func (h *header) marked() bool { return h.flags&flagMark != 0 }
func (h *header) setAlloc()    { h.flags |= flagAlloc }
func (h *header) setMark()     { h.flags |= flagMark }
func (h *header) clearMark()   { h.flags &^= flagMark }
