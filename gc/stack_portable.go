//go:build !amd64 && !arm64

package gc

import "unsafe"

// getSP has no hand-written implementation on this architecture. The
// address of a local is the best portable approximation available; it is
// less reliable than a true register read (escape analysis may relocate
// the local). The result is used only as a stack bound for markStack.
func getSP() uintptr {
	var local int
	return uintptr(unsafe.Pointer(&local))
}

// spillRegisters cannot reach raw registers from portable Go. The buffer
// is left zeroed, which scans as harmless non-pointers; values live only
// in registers are already covered by the compiler having spilled anything
// address-taken to the stack, which markStack still scans.
func spillRegisters(buf *[registerBufWords]uintptr) {}
