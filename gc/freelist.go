package gc

import "unsafe"

// freeList is the single circular, singly-linked list threaded through all
// chunks. It is never nil once the first chunk has been created (see the
// bootstrap branch in Allocate), and its ALLOC bit is always clear for
// every member.
var freeList *header

// Allocate returns a pointer to a block of at least n bytes, rounded up to
// pointer alignment. It returns nil for n == 0 and nil again if the OS is
// exhausted even after a collection and a heap growth attempt.
func Allocate(n uintptr) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	n = alignUp(n)

	if freeList == nil {
		h := addHeap(TinyHeapSize)
		if h == nil {
			return nil
		}
		freeList = h
	}

	for attempt := 0; ; attempt++ {
		if p := tryAllocate(n); p != nil {
			return p
		}
		switch attempt {
		case 0:
			Collect()
		case 1:
			if grow(n) == nil {
				return nil
			}
		default:
			return nil
		}
	}
}

// tryAllocate performs a single next-fit pass over the free list starting
// at the cursor (freeList), returning nil once it has wrapped all the way
// around without finding a block of at least n bytes.
func tryAllocate(n uintptr) unsafe.Pointer {
	prev := freeList
	for p := prev.nextFree; ; prev, p = p, p.nextFree {
		if p.size >= n {
			if p.size == n {
				// Just fit: unlink p by redirecting its predecessor.
				prev.nextFree = p.nextFree
			} else {
				// Too big: carve the tail off the high end, mirroring
				// mini_gc_malloc's split. p keeps its list position and
				// shrinks in place; the freshly carved block at the new
				// high address is what gets returned.
				p.size -= n + headerSize
				p = p.nextHeader()
				p.size = n
			}
			freeList = prev // next-fit locality
			p.setAlloc()
			debugf("allocate %d bytes at %p", n, p)
			return p.payload()
		}
		if p == freeList {
			return nil
		}
	}
}

// Free returns ptr, a pointer previously returned by Allocate, to the free
// list. It locates the sorted-by-address insertion point by walking the
// free list from the cursor, handling the wraparound position where the
// highest-address free block's next_free wraps back to the lowest, then
// coalesces with any physically adjacent free neighbor on either side.
//
// Behavior is undefined if ptr is not a current allocation.
func Free(ptr unsafe.Pointer) {
	target := headerFromPayload(ptr)
	targetAddr := addr(unsafe.Pointer(target))

	var hit *header
	for hit = freeList; ; hit = hit.nextFree {
		hitAddr := addr(unsafe.Pointer(hit))
		nextAddr := addr(unsafe.Pointer(hit.nextFree))
		if targetAddr > hitAddr && targetAddr < nextAddr {
			break
		}
		if hitAddr >= nextAddr && (targetAddr > hitAddr || targetAddr < nextAddr) {
			// hit is the highest-address free block and target belongs
			// either above it or below the wraparound to the lowest.
			break
		}
	}

	if target.nextHeader() == hit.nextFree {
		// Merge forward: absorb the successor's size plus its header.
		target.size += hit.nextFree.size + headerSize
		target.nextFree = hit.nextFree.nextFree
	} else {
		target.nextFree = hit.nextFree
	}

	if hit.nextHeader() == target {
		// Merge backward: absorb target's size plus its header.
		hit.size += target.size + headerSize
		hit.nextFree = target.nextFree
	} else {
		hit.nextFree = target
	}

	freeList = hit
	target.flags = 0
	debugf("free %p", target)
}
