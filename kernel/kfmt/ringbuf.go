package kfmt

import "io"

// ringBufferSize is large enough to hold a full 80x25 text screen. It must be
// a power of 2.
const ringBufferSize = 2048

// ringBuffer holds Printf output produced before the console is attached.
// When full, the oldest bytes are overwritten.
type ringBuffer struct {
	buffer         [ringBufferSize]byte
	rIndex, wIndex int
}

// Write appends p to the buffer, dropping the oldest data on overflow.
func (rb *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		rb.buffer[rb.wIndex] = b
		rb.wIndex = (rb.wIndex + 1) & (ringBufferSize - 1)
		if rb.rIndex == rb.wIndex {
			rb.rIndex = (rb.rIndex + 1) & (ringBufferSize - 1)
		}
	}

	return len(p), nil
}

// Read implements io.Reader. It returns io.EOF once the buffer is drained.
func (rb *ringBuffer) Read(p []byte) (n int, err error) {
	var avail int
	switch {
	case rb.rIndex == rb.wIndex:
		return 0, io.EOF
	case rb.rIndex < rb.wIndex:
		avail = rb.wIndex - rb.rIndex
	default:
		// Read up to the end of the backing array; the wrapped part is
		// returned by the next call.
		avail = ringBufferSize - rb.rIndex
	}

	if n = len(p); n > avail {
		n = avail
	}

	copy(p, rb.buffer[rb.rIndex:rb.rIndex+n])
	rb.rIndex = (rb.rIndex + n) & (ringBufferSize - 1)
	return n, nil
}
