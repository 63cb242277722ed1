package sim

import "sync"

// CRTC registers that hold the cursor location.
const (
	crtcCursorHigh uint8 = 0x0E
	crtcCursorLow  uint8 = 0x0F
)

// CRTC emulates the index/data register pair of the VGA CRT controller.
type CRTC struct {
	mu    sync.Mutex
	index uint8
	regs  [256]uint8
}

// InByte reads the index register or the selected data register.
func (c *CRTC) InByte(port uint16) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if port == CRTCIndexPort {
		return c.index
	}

	return c.regs[c.index]
}

// OutByte selects a register or writes the selected register.
func (c *CRTC) OutByte(port uint16, val uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if port == CRTCIndexPort {
		c.index = val
		return
	}

	c.regs[c.index] = val
}

// CursorOffset returns the linear cursor offset programmed by the driver.
func (c *CRTC) CursorOffset() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return int(c.regs[crtcCursorHigh])<<8 | int(c.regs[crtcCursorLow])
}

// CursorPos returns the cursor offset as a row and column for a console that
// is width cells wide.
func (c *CRTC) CursorPos(width int) (row, col int) {
	offset := c.CursorOffset()
	return offset / width, offset % width
}
