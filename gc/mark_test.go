package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestEnclosingBlockAcceptsInteriorPointers(t *testing.T) {
	resetHeap()
	Init()
	p := Allocate(4 * ptrSize)
	require.NotNil(t, p)

	interior := unsafe.Pointer(addr(p) + ptrSize)
	h := enclosingBlock(interior)
	require.NotNil(t, h)
	require.Same(t, headerFromPayload(p), h)
}

func TestEnclosingBlockRejectsFreeBlocks(t *testing.T) {
	resetHeap()
	Init()
	p := Allocate(16)
	Free(p)
	require.Nil(t, enclosingBlock(p))
}

func TestEnclosingBlockRejectsOutOfRangeAddress(t *testing.T) {
	resetHeap()
	Init()
	Allocate(16)
	var notHeap int
	require.Nil(t, enclosingBlock(unsafe.Pointer(&notHeap)))
}

func TestMarkRangeToleratesUnalignedPointerOffsets(t *testing.T) {
	resetHeap()
	Init()
	target := Allocate(32)
	require.NotNil(t, target)
	th := headerFromPayload(target)

	// Build a byte buffer with the pointer value written at a
	// deliberately unaligned offset, then scan it as a root range.
	buf := make([]byte, 3*ptrSize)
	*(*uintptr)(unsafe.Pointer(&buf[1])) = addr(target)

	base := uintptr(unsafe.Pointer(&buf[0]))
	markRange(base, base+uintptr(len(buf)))

	require.True(t, th.marked())
}

func TestMarkLeavesAlreadyMarkedBlockAlone(t *testing.T) {
	resetHeap()
	Init()
	p := Allocate(16)
	h := headerFromPayload(p)
	h.setMark()

	// mark() on an already-marked block must be a no-op, not a re-scan;
	// this checks that the call returns and leaves the mark bit set.
	mark(p)
	require.True(t, h.marked())
}
