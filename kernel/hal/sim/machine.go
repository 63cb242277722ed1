// Package sim provides an emulated device.Bus with the subset of PC hardware
// used by the kernel: a PS/2 controller, the VGA CRTC cursor registers and the
// text mode buffer. It allows the kernel to run as a regular process.
package sim

import (
	"kfs/device"
	"sync"
)

// Hardware locations emulated by Machine.
const (
	PS2DataPort    uint16  = 0x60
	PS2StatusPort  uint16  = 0x64
	CRTCIndexPort  uint16  = 0x3D4
	CRTCDataPort   uint16  = 0x3D5
	TextBufferAddr uintptr = 0x000B_8000

	// TextCells is the number of cells in the emulated text buffer.
	TextCells = 80 * 25

	// floatingBus is returned when reading a port with no device behind it.
	floatingBus uint8 = 0xFF
)

// Machine is an emulated PC that implements device.Bus.
type Machine struct {
	PS2   *PS2Controller
	CRTC  *CRTC
	Cells Cells

	mu        sync.Mutex
	unhandled []uint16
}

// NewMachine returns a machine with a PS/2 controller, a CRTC and a text
// buffer filled with zeroes.
func NewMachine() *Machine {
	return &Machine{
		PS2:   &PS2Controller{},
		CRTC:  &CRTC{},
		Cells: make(Cells, TextCells),
	}
}

// InByte reads a byte from port.
func (m *Machine) InByte(port uint16) uint8 {
	switch port {
	case PS2DataPort, PS2StatusPort:
		return m.PS2.InByte(port)
	case CRTCIndexPort, CRTCDataPort:
		return m.CRTC.InByte(port)
	}

	m.recordUnhandled(port)
	return floatingBus
}

// OutByte writes val to port.
func (m *Machine) OutByte(port uint16, val uint8) {
	switch port {
	case PS2DataPort, PS2StatusPort:
		m.PS2.OutByte(port, val)
		return
	case CRTCIndexPort, CRTCDataPort:
		m.CRTC.OutByte(port, val)
		return
	}

	m.recordUnhandled(port)
}

// MapCells returns the text buffer if the requested region lies within it.
func (m *Machine) MapCells(physAddr uintptr, count int) device.CellBuffer {
	if physAddr != TextBufferAddr || count > len(m.Cells) {
		return nil
	}

	return m.Cells[:count]
}

// Unhandled returns the ports accessed without a device behind them.
func (m *Machine) Unhandled() []uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]uint16(nil), m.unhandled...)
}

func (m *Machine) recordUnhandled(port uint16) {
	m.mu.Lock()
	m.unhandled = append(m.unhandled, port)
	m.mu.Unlock()
}

// Cells is a RAM-backed device.CellBuffer.
type Cells []uint16

// Len returns the number of cells.
func (c Cells) Len() int { return len(c) }

// ReadCell returns the cell at index.
func (c Cells) ReadCell(index int) uint16 { return c[index] }

// WriteCell sets the cell at index.
func (c Cells) WriteCell(index int, val uint16) { c[index] = val }

// Text returns the characters stored in row as a string with trailing
// blanks removed. Empty cells are rendered as spaces.
func (c Cells) Text(row, width int) string {
	line := make([]byte, 0, width)
	for _, cell := range c[row*width : (row+1)*width] {
		ch := byte(cell)
		if ch == 0 {
			ch = ' '
		}
		line = append(line, ch)
	}

	end := len(line)
	for end > 0 && line[end-1] == ' ' {
		end--
	}

	return string(line[:end])
}
