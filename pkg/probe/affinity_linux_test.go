//go:build linux

package probe

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestPinCurrentThread(t *testing.T) {
	// Lock without unlocking: the narrowed affinity dies with this test
	// goroutine's thread instead of leaking back into the scheduler pool.
	runtime.LockOSThread()

	require.NoError(t, pinCurrentThread())

	var allowed unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &allowed))
	assert.Equal(t, 1, allowed.Count())
}
