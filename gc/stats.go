package gc

import (
	"fmt"

	bytesize "github.com/inhies/go-bytesize"
)

// Stats summarizes the current state of the heap. It is a supplemental,
// diagnostics-only view: nothing in the collector itself consults it.
type Stats struct {
	Chunks      int
	ChunkBytes  uintptr
	FreeBytes   uintptr
	Collections int
}

// collections counts completed calls to Collect, independent of whether
// they reclaimed anything.
var collections int

func (s Stats) String() string {
	used := bytesize.New(float64(s.ChunkBytes - s.FreeBytes))
	free := bytesize.New(float64(s.FreeBytes))
	total := bytesize.New(float64(s.ChunkBytes))
	return fmt.Sprintf("chunks=%d total=%s used=%s free=%s collections=%d",
		s.Chunks, total, used, free, s.Collections)
}

// CollectStats walks the chunk table and free list to build a snapshot of
// current heap usage. It does not trigger a collection.
func CollectStats() Stats {
	var chunkBytes uintptr
	for i := 0; i < chunksUsed; i++ {
		chunkBytes += chunks[i].size
	}
	return Stats{
		Chunks:      chunksUsed,
		ChunkBytes:  chunkBytes,
		FreeBytes:   freeBytes(),
		Collections: collections,
	}
}

// freeBytes sums the payload size of every block currently on the free
// list, walking it exactly once starting from the cursor.
func freeBytes() uintptr {
	if freeList == nil {
		return 0
	}
	var total uintptr
	for p := freeList; ; p = p.nextFree {
		total += p.size
		if p.nextFree == freeList {
			break
		}
	}
	return total
}
