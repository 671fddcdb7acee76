package gc

import "unsafe"

// sweep walks every chunk's blocks in address order, reclaiming each
// allocated-but-unmarked block and clearing the mark bit on every
// allocated block that survived. The loop's advance to the next header
// must read p's size *after* any Free call on p has run, not before: when
// Free merges p forward into its neighbor, p's size field grows to cover
// the absorbed neighbor's header and payload in one stride, and advancing
// with a pre-mutation size would otherwise revisit stale, already-absorbed
// header bytes as if they were a distinct block.
func sweep() {
	for i := 0; i < chunksUsed; i++ {
		c := &chunks[i]
		limit := addr(unsafe.Pointer(c.slot)) + c.size
		for p := c.slot; addr(unsafe.Pointer(p)) < limit; p = p.nextHeader() {
			if !p.alloc() {
				continue
			}
			if p.marked() {
				p.clearMark()
				continue
			}
			debugf("sweep reclaims %p", p)
			Free(p.payload())
		}
	}
}
