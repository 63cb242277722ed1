package hal

import (
	"kfs/device"
	"kfs/kernel/cpu"
)

// Machine is the device.Bus of the physical machine. Ports are accessed with
// IN/OUT instructions and memory regions are used in place since the kernel
// runs with paging disabled.
type Machine struct{}

// InByte reads a byte from port.
func (Machine) InByte(port uint16) uint8 {
	return cpu.PortReadByte(port)
}

// OutByte writes val to port.
func (Machine) OutByte(port uint16, val uint8) {
	cpu.PortWriteByte(port, val)
}

// MapCells returns a cell buffer for the physical region at physAddr.
func (Machine) MapCells(physAddr uintptr, count int) device.CellBuffer {
	return newMMIOCells(physAddr, count)
}
