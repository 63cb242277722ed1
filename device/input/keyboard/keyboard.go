// Package keyboard implements a polled driver for PS/2 keyboards that use
// scan code set 1.
package keyboard

import (
	"io"
	"kfs/device"
	"kfs/device/bus/ps2"
	"kfs/kernel"
	"kfs/kernel/kfmt"
)

// maxStaleBytes bounds the number of bytes drained by DriverInit so that a
// controller that never clears its output-full bit cannot hang the boot.
const maxStaleBytes = 32

// statusFloating is read back from the status port when no controller is
// attached to the bus.
const statusFloating uint8 = 0xFF

// Keyboard is a driver for a PS/2 keyboard attached to the first controller
// port.
type Keyboard struct {
	ctrl    *ps2.Controller
	decoder Decoder
}

// NewKeyboard returns a keyboard driver that reads scancodes via ctrl.
func NewKeyboard(ctrl *ps2.Controller) *Keyboard {
	return &Keyboard{ctrl: ctrl}
}

// Poll returns the next key event and true if a scancode was waiting in the
// controller. It never blocks.
func (kb *Keyboard) Poll() (KeyEvent, bool) {
	if !kb.ctrl.DataAvailable() {
		return KeyEvent{}, false
	}

	return kb.decoder.Decode(kb.ctrl.ReadData()), true
}

// Mods returns the modifiers currently held.
func (kb *Keyboard) Mods() Modifiers {
	return kb.decoder.Mods()
}

// DriverName returns the name of this driver.
func (kb *Keyboard) DriverName() string {
	return "ps2_keyboard"
}

// DriverVersion returns the version of this driver.
func (kb *Keyboard) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit discards any scancodes that were queued before the driver took
// over the controller.
func (kb *Keyboard) DriverInit(w io.Writer) *kernel.Error {
	var drained int
	for ; drained < maxStaleBytes && kb.ctrl.DataAvailable(); drained++ {
		kb.ctrl.ReadData()
	}

	if drained != 0 {
		kfmt.Fprintf(w, "discarded %d stale scancode(s)\n", drained)
	}

	return nil
}

// probeForKeyboard checks for the presence of a PS/2 controller.
func probeForKeyboard(bus device.Bus) device.Driver {
	ctrl := ps2.NewController(bus)
	if ctrl.Status() == statusFloating {
		return nil
	}

	return NewKeyboard(ctrl)
}

func init() {
	device.RegisterDriver(&device.DriverInfo{
		Order: device.DetectOrderNormal,
		Probe: probeForKeyboard,
	})
}
