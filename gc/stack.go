package gc

// registerBufWords bounds the buffer spillRegisters writes into. amd64 and
// arm64 each use only a prefix of it (see stack_amd64.s / stack_arm64.s);
// the rest stays zero, which scans as a harmless non-pointer.
const registerBufWords = 16

// stackStart and stackEnd bound the range markStack scans on each
// collection. stackStart is set once by initStack (at Init) and then
// perpetually nudged by refreshStack on every collection. This mirrors the
// reference implementation exactly: it never recomputes a "true" stack
// bound from the OS, only from addresses observed in the collector's own
// frames.
var (
	stackStart uintptr
	stackEnd   uintptr
)

// initStack records the current stack pointer as the collector's initial
// reference point. The reference implementation does this by taking the
// address of a local in gc_init; this package uses getSP instead, because
// Go's escape analysis would otherwise be free to move an address-of-local
// to the heap, making it useless as a stack bound.
func initStack() {
	stackStart = getSP()
}

// refreshStack captures a fresh stack pointer and (re)orients
// [stackStart, stackEnd) so stackStart <= stackEnd, detecting the stack's
// growth direction by comparing against the previous stackStart. The
// off-by-one adjustments include the collector's own active frame in the
// scanned range.
func refreshStack() {
	sp := getSP()
	if stackStart > sp {
		stackStart, stackEnd = sp, stackStart
		stackStart--
	} else {
		stackEnd = sp
		stackStart++
	}
}
