//go:build unix

package gc

import "golang.org/x/sys/unix"

// osRequest acquires a private, anonymous memory mapping, the Unix analogue
// of the reference implementation's sbrk call: the mapping is never
// released back to the kernel for the process's lifetime, matching
// chunks never moving, shrinking, or being unmapped for the process's lifetime.
func osRequest(size uintptr) ([]byte, bool) {
	mem, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, false
	}
	return mem, true
}
