// Package ps2 provides access to the registers of the 8042 PS/2 controller.
package ps2

import (
	"kfs/device"
	"kfs/kernel/sync"
)

// Controller I/O ports.
const (
	DataPort    uint16 = 0x60
	StatusPort  uint16 = 0x64
	CommandPort uint16 = 0x64
)

// Status register bits.
const (
	// StatusOutputFull is set when a byte from the device is waiting in
	// the data port.
	StatusOutputFull uint8 = 1 << 0

	// StatusInputFull is set while the controller is still processing a
	// previously written byte.
	StatusInputFull uint8 = 1 << 1
)

// spinHintFn is invoked while waiting for the controller; mocked by tests.
var spinHintFn = sync.SpinHint

// Controller talks to a PS/2 controller through a port bus.
type Controller struct {
	ports device.PortIO
}

// NewController returns a controller that accesses its registers via ports.
func NewController(ports device.PortIO) *Controller {
	return &Controller{ports: ports}
}

// Status returns the raw contents of the status register.
func (c *Controller) Status() uint8 {
	return c.ports.InByte(StatusPort)
}

// DataAvailable returns true if a byte can be read from the data port.
func (c *Controller) DataAvailable() bool {
	return c.Status()&StatusOutputFull != 0
}

// ReadData reads a byte from the data port. Callers should check
// DataAvailable first; reading an empty port returns whatever value the
// controller last latched.
func (c *Controller) ReadData() uint8 {
	return c.ports.InByte(DataPort)
}

// WriteCmd waits for the controller input buffer to drain and then writes cmd
// to the command port.
func (c *Controller) WriteCmd(cmd uint8) {
	for c.Status()&StatusInputFull != 0 {
		spinHintFn()
	}

	c.ports.OutByte(CommandPort, cmd)
}
