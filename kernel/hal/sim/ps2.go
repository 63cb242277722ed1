package sim

import "sync"

// PS2 status register bits.
const (
	ps2OutputFull uint8 = 1 << 0
	ps2InputFull  uint8 = 1 << 1
)

// PS2Controller emulates an 8042 controller with a keyboard attached to its
// first port. Scancodes are queued with Enqueue and handed out one at a time
// through the data port. It is safe for concurrent use.
type PS2Controller struct {
	mu sync.Mutex

	queue    []uint8
	busy     int
	commands []uint8
	written  []uint8
}

// Enqueue appends scancodes to the output buffer.
func (c *PS2Controller) Enqueue(scancodes ...uint8) {
	c.mu.Lock()
	c.queue = append(c.queue, scancodes...)
	c.mu.Unlock()
}

// Pending returns the number of queued scancodes.
func (c *PS2Controller) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.queue)
}

// SetBusy makes the next n status reads report a full input buffer.
func (c *PS2Controller) SetBusy(n int) {
	c.mu.Lock()
	c.busy = n
	c.mu.Unlock()
}

// Commands returns the controller commands written so far.
func (c *PS2Controller) Commands() []uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]uint8(nil), c.commands...)
}

// DataWrites returns the bytes written to the data port so far.
func (c *PS2Controller) DataWrites() []uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]uint8(nil), c.written...)
}

// InByte reads the status or data register.
func (c *PS2Controller) InByte(port uint16) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if port == PS2StatusPort {
		var status uint8
		if len(c.queue) != 0 {
			status |= ps2OutputFull
		}
		if c.busy > 0 {
			status |= ps2InputFull
			c.busy--
		}
		return status
	}

	if len(c.queue) == 0 {
		return 0
	}

	sc := c.queue[0]
	c.queue = c.queue[1:]
	return sc
}

// OutByte writes a controller command or a device byte.
func (c *PS2Controller) OutByte(port uint16, val uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if port == PS2StatusPort {
		c.commands = append(c.commands, val)
		return
	}

	c.written = append(c.written, val)
}
