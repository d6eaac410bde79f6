//go:build linux

package probe

import (
	"errors"

	"golang.org/x/sys/unix"
)

// pinCurrentThread restricts the calling thread to a single CPU out of its
// currently allowed set, keeping the whole sweep on one core's caches.
// Callers must have locked the goroutine to its OS thread first.
func pinCurrentThread() error {
	var allowed unix.CPUSet
	if err := unix.SchedGetaffinity(0, &allowed); err != nil {
		return err
	}

	// IsSet is bounds-checked, so scanning the full mask width is safe.
	for cpu := 0; cpu < len(allowed)*64; cpu++ {
		if allowed.IsSet(cpu) {
			var pinned unix.CPUSet
			pinned.Zero()
			pinned.Set(cpu)
			return unix.SchedSetaffinity(0, &pinned)
		}
	}

	return errors.New("no CPU available in the affinity mask")
}
