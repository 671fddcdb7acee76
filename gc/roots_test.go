package gc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestRegisterRootRangeNormalizesOrder(t *testing.T) {
	resetHeap()
	var a, b int
	start := unsafe.Pointer(&b)
	end := unsafe.Pointer(&a)
	if addr(start) < addr(end) {
		start, end = end, start
	}
	// start is now guaranteed to be the higher address; registering in
	// that order must still normalize to (low, high).
	RegisterRootRange(start, end)
	require.LessOrEqual(t, rootRanges[0].start, rootRanges[0].end)
}

func TestRegisterRootRangeFillsTableBelowLimit(t *testing.T) {
	resetHeap()
	var x int
	p := unsafe.Pointer(&x)
	for i := 0; i < RootRangesLimit-1; i++ {
		RegisterRootRange(p, p)
	}
	require.Equal(t, RootRangesLimit-1, rootRangesUsed, "the limit-th registration is fatal, so tests stop one short of it")
}
