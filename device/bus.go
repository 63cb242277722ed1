package device

// PortIO provides byte-wide access to the x86 I/O port space.
type PortIO interface {
	// InByte reads a byte from the requested port.
	InByte(port uint16) uint8

	// OutByte writes a byte to the requested port.
	OutByte(port uint16, val uint8)
}

// CellBuffer provides ordered access to a memory-mapped array of 16-bit
// cells such as the VGA text framebuffer. Implementations must not cache or
// reorder reads and writes.
type CellBuffer interface {
	// Len returns the number of cells in the buffer.
	Len() int

	// ReadCell returns the value of the cell at index.
	ReadCell(index int) uint16

	// WriteCell sets the value of the cell at index.
	WriteCell(index int, val uint16)
}

// Bus is the hardware-access boundary used by all drivers. The kernel
// provides an implementation backed by real port instructions and physical
// memory while tests and the simulator provide emulated devices.
type Bus interface {
	PortIO

	// MapCells returns a CellBuffer for count cells starting at the
	// physical address physAddr or nil if the region is not available.
	MapCells(physAddr uintptr, count int) CellBuffer
}
