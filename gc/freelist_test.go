package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestAllocateZeroReturnsNil(t *testing.T) {
	resetHeap()
	Init()
	require.Nil(t, Allocate(0))
}

func TestAllocateRoundsUpToPointerAlignment(t *testing.T) {
	resetHeap()
	Init()
	p := Allocate(3)
	require.NotNil(t, p)
	h := headerFromPayload(p)
	require.Zero(t, h.size%ptrSize)
	require.GreaterOrEqual(t, h.size, uintptr(3))
}

func TestFreeClearsAllFlags(t *testing.T) {
	resetHeap()
	Init()
	p := Allocate(16)
	h := headerFromPayload(p)
	h.setMark() // simulate surviving a partial mark pass
	Free(p)
	require.Equal(t, uintptr(0), h.flags)
}

func TestFreeListIsSingleCycleAfterFreeingEverything(t *testing.T) {
	resetHeap()
	Init()
	ps := make([]unsafe.Pointer, 5)
	for i := range ps {
		ps[i] = Allocate(24)
	}
	for _, p := range ps {
		Free(p)
	}

	seen := map[*header]bool{}
	n := 0
	for p := freeList; ; p = p.nextFree {
		require.False(t, seen[p], "free list must not revisit a node before completing its cycle")
		seen[p] = true
		require.False(t, p.alloc())
		n++
		if p.nextFree == freeList {
			break
		}
		if n > 10 {
			t.Fatal("free list failed to cycle back to its start")
		}
	}
	require.Equal(t, 1, n, "adjacent frees should have fully coalesced back into one block")
}

func TestRoundTripRestoresFreeByteCount(t *testing.T) {
	resetHeap()
	Init()

	// The first Allocate creates the bootstrap chunk, so one round trip
	// runs before measuring; otherwise the new chunk itself would count.
	Free(Allocate(64))

	before := freeBytes()
	p := Allocate(64)
	Free(p)
	after := freeBytes()

	require.Equal(t, before, after)
}

func TestCollectTwiceWithNoMutationIsIdempotent(t *testing.T) {
	resetHeap()
	Init()
	Allocate(32)

	Collect()
	statsAfterFirst := CollectStats()
	Collect()
	statsAfterSecond := CollectStats()

	require.Equal(t, statsAfterFirst.ChunkBytes, statsAfterSecond.ChunkBytes)
	require.Equal(t, statsAfterFirst.FreeBytes, statsAfterSecond.FreeBytes)
}
