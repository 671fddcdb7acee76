package gc

// Init prepares the collector for use. It must be called once, before the
// first call to Allocate, RegisterRootRange, or Collect, and from the
// goroutine that will make all subsequent calls into this package. This
// collector has no internal locking and assumes a single mutator, matching
// the reference implementation's single-threaded design.
func Init() {
	initStack()
}

// Collect performs one stop-the-world mark-sweep cycle: it marks every
// block reachable from the registers, the stack, and the registered root
// ranges, then sweeps every chunk, reclaiming everything left unmarked.
// Allocate calls this automatically when the free list can't satisfy a
// request; most callers never need to call it directly.
func Collect() {
	refreshStack()

	markRegisters()
	markStack()
	markRootRanges()
	sweep()
	collections++
}
