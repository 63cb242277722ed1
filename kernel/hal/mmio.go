package hal

import "unsafe"

// mmioCells is a device.CellBuffer backed by identity-mapped physical memory.
type mmioCells struct {
	base  uintptr
	count int
}

// newMMIOCells returns a cell buffer covering count 16-bit cells starting at
// the physical address base.
func newMMIOCells(base uintptr, count int) *mmioCells {
	return &mmioCells{base: base, count: count}
}

// Len returns the number of cells in the buffer.
func (c *mmioCells) Len() int {
	return c.count
}

// ReadCell returns the cell at index. Out of range reads return 0.
//
//go:noinline
func (c *mmioCells) ReadCell(index int) uint16 {
	if index < 0 || index >= c.count {
		return 0
	}

	return *(*uint16)(unsafe.Pointer(c.base + uintptr(index)<<1))
}

// WriteCell stores val at index. Out of range writes are ignored.
//
//go:noinline
func (c *mmioCells) WriteCell(index int, val uint16) {
	if index < 0 || index >= c.count {
		return
	}

	*(*uint16)(unsafe.Pointer(c.base + uintptr(index)<<1)) = val
}
