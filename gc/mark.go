package gc

import "unsafe"

// enclosingBlock returns the header of the allocated block containing ptr,
// or nil if ptr doesn't fall strictly inside any known, currently-allocated
// block. It is the sole arbiter of "is this candidate word a pointer":
// anything it accepts is conservatively treated as live, interior pointers
// included.
func enclosingBlock(ptr unsafe.Pointer) *header {
	c := containing(ptr)
	if c == nil {
		return nil
	}
	base := addr(unsafe.Pointer(c.slot))
	limit := base + headerSize + c.size
	a := addr(ptr)
	if a < base || a >= limit {
		return nil
	}

	for p := c.slot; ; p = p.nextHeader() {
		pAddr := addr(unsafe.Pointer(p))
		payload := pAddr + headerSize
		if a >= payload && a < payload+p.size {
			if p.alloc() {
				return p
			}
			return nil
		}
		if payload+p.size >= limit {
			return nil
		}
	}
}

// markRange conservatively scans [start, end) byte-by-byte (not
// word-by-word): every byte offset is tried as the start of a
// pointer-sized word, tolerating unaligned reads, because a genuine
// pointer value may be stored at any byte offset in an interior field or
// on an unaligned stack slot.
func markRange(start, end uintptr) {
	if end <= start {
		return
	}
	if end-start < ptrSize {
		return
	}
	last := end - ptrSize
	for a := start; a <= last; a++ {
		var word uintptr
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&word)), ptrSize), unsafe.Slice((*byte)(unsafe.Pointer(a)), ptrSize))
		mark(unsafe.Pointer(word))
	}
}

// mark marks the block containing ptr (if any) and, if this is the first
// time it has been marked, recursively scans its payload for further
// candidate pointers. Unallocated memory, pointers outside any known
// chunk, and already-marked blocks are all no-ops.
func mark(ptr unsafe.Pointer) {
	h := enclosingBlock(ptr)
	if h == nil || h.marked() {
		return
	}
	h.setMark()
	debugf("mark %p", h)
	base := addr(h.payload())
	markRange(base, base+h.size)
}

// markRootRanges scans every user-registered root range.
func markRootRanges() {
	for i := 0; i < rootRangesUsed; i++ {
		r := rootRanges[i]
		markRange(r.start, r.end)
	}
}

// markStack scans the collector-observed stack bounds, refreshed just
// before this call by refreshStack.
func markStack() {
	markRange(stackStart, stackEnd)
}

// markRegisters spills the callee-saved registers to a local buffer and
// scans it like any other root range, catching live pointers a compiler
// has kept in registers rather than spilled to the stack.
func markRegisters() {
	var buf [registerBufWords]uintptr
	spillRegisters(&buf)
	base := uintptr(unsafe.Pointer(&buf[0]))
	markRange(base, base+uintptr(len(buf))*ptrSize)
}
