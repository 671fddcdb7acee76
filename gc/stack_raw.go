//go:build amd64 || arm64

package gc

// getSP returns the current hardware stack pointer. Implemented in
// stack_amd64.s / stack_arm64.s.
func getSP() uintptr

// spillRegisters writes the architecture's callee-saved general-purpose
// registers into buf, the Go analogue of the reference implementation's use
// of setjmp purely for its side effect of spilling registers into a
// jmp_buf. Unused trailing slots are left zero. Implemented in
// stack_amd64.s / stack_arm64.s.
func spillRegisters(buf *[registerBufWords]uintptr)
