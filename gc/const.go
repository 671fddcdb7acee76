package gc

import "unsafe"

const (
	// TinyHeapSize is the minimum number of payload bytes requested from the
	// OS heap provider for any single chunk. Smaller requests are rounded up
	// to this floor.
	TinyHeapSize = 0x4000

	// HeapLimit bounds the number of chunks the registry can record. Needing
	// more than this indicates a programming error, not a runtime condition,
	// so exceeding it is fatal (see errors.go).
	HeapLimit = 10000

	// RootRangesLimit bounds the number of user-registered root ranges.
	// Reaching it is fatal (the registration that fills the table aborts),
	// for the same reason as HeapLimit.
	RootRangesLimit = 1000
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// alignUp rounds n up to the next multiple of the pointer size.
func alignUp(n uintptr) uintptr {
	return (n + ptrSize - 1) &^ (ptrSize - 1)
}

func addr(p unsafe.Pointer) uintptr {
	return uintptr(p)
}
