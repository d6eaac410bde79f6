package workload

import "fmt"

const (
	// LineBufferBytes is the default byte-buffer size for line probing.
	// Large enough that a full stride sweep never fits in any cache level.
	LineBufferBytes = 16 * 1024 * 1024

	// LineIterations is the fixed number of accesses per line-probe run.
	LineIterations = 64 * 1024

	// CapacityIterations is the fixed number of accesses per capacity-probe run.
	CapacityIterations = 1024 * 1024

	// IntElementSize converts capacity-probe element counts to bytes.
	IntElementSize = 4
)

// ByteStride touches a fixed byte buffer at a varying stride. Consecutive
// accesses land inside one cache line while the stride is below the true
// line size; past it, every access faults a new line.
type ByteStride struct {
	buf []byte
}

func NewByteStride(size int) (*ByteStride, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("byte buffer size %d is not a power of two", size)
	}
	return &ByteStride{buf: make([]byte, size)}, nil
}

// Touch increments LineIterations buffer elements spaced stride bytes apart,
// wrapping at the buffer end. The increment is a read-modify-write, so every
// access genuinely reaches memory and cannot be discarded as dead code.
func (w *ByteStride) Touch(stride int) {
	mask := len(w.buf) - 1
	for i := 0; i < LineIterations; i++ {
		w.buf[(i*stride)&mask]++ // (x & mask) avoids a modulo per access
	}
}

// Checksum sums the buffer contents, observing the mutations made by Touch.
func (w *ByteStride) Checksum() int64 {
	var sum int64
	for _, b := range w.buf {
		sum += int64(b)
	}
	return sum
}

// IntStride touches the leading length elements of a fixed int32 buffer at a
// fixed stride. The working-set size, not the stride, is the swept variable:
// runs stay fast while length elements fit in a cache level and slow down
// once they spill to the next one.
type IntStride struct {
	buf []int32
}

func NewIntStride(maxElements int) (*IntStride, error) {
	if maxElements <= 0 || maxElements&(maxElements-1) != 0 {
		return nil, fmt.Errorf("int buffer size %d is not a power of two", maxElements)
	}
	return &IntStride{buf: make([]int32, maxElements)}, nil
}

// MaxElements returns the backing buffer capacity in elements.
func (w *IntStride) MaxElements() int {
	return len(w.buf)
}

// Touch increments CapacityIterations elements inside the first length
// elements of the buffer, advancing by stride and wrapping with a bitmask.
// length must be a power of two not exceeding MaxElements; this is a
// documented precondition, not a runtime check, as Touch sits on the timed
// path.
func (w *IntStride) Touch(length, stride int) {
	mask := length - 1
	for i := 0; i < CapacityIterations; i++ {
		w.buf[(i*stride)&mask]++
	}
}

// Checksum sums the buffer contents, observing the mutations made by Touch.
func (w *IntStride) Checksum() int64 {
	var sum int64
	for _, v := range w.buf {
		sum += int64(v)
	}
	return sum
}
