// Package kmain contains the kernel entry points and the main polling loop.
package kmain

import (
	"kfs/device"
	"kfs/device/input/keyboard"
	"kfs/device/video/console"
	"kfs/kernel"
	"kfs/kernel/gdt"
	"kfs/kernel/hal"
	"kfs/kernel/kfmt"
)

var (
	errNoConsole     = &kernel.Error{Module: "kmain", Message: "no console device detected"}
	errNoKeyboard    = &kernel.Error{Module: "kmain", Message: "no keyboard detected"}
	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}

	// The following functions are mocked by tests.
	detectHardwareFn = hal.DetectHardware
	dumpStackFn      = gdt.DumpStack
	panicFn          = kfmt.Panic
)

// Kernel holds the devices driven by the main loop. It is created once at
// boot and passed around explicitly.
type Kernel struct {
	console  *console.Shared
	keyboard *keyboard.Keyboard
}

// Boot detects the hardware attached to bus, prints the boot banner and a
// dump of the kernel stack. It returns an error if either the console or the
// keyboard is missing.
func Boot(bus device.Bus, magic, mbi uint32) (*Kernel, *kernel.Error) {
	devices := detectHardwareFn(bus)
	if devices.Console == nil {
		return nil, errNoConsole
	}
	if devices.Keyboard == nil {
		return nil, errNoKeyboard
	}

	k := &Kernel{
		console:  devices.Console,
		keyboard: devices.Keyboard,
	}

	k.Greet(magic, mbi)
	dumpStackFn(k.console)

	return k, nil
}

// Greet prints the boot loader arguments followed by a green "42".
func (k *Kernel) Greet(magic, mbi uint32) {
	kfmt.Printf("kfs: boot magic=0x%x mbi=0x%x\n", magic, mbi)
	k.console.WithColor(console.LightGreen, console.Black, func(dev console.Device) {
		console.WriteString(dev, "42\n")
	})
}

// Step polls the keyboard once and echoes the decoded key, if any, to the
// console. It returns true if a scancode was consumed.
func (k *Kernel) Step() bool {
	ev, ok := k.keyboard.Poll()
	if !ok {
		return false
	}

	if b, ok := ev.PrintableByte(); ok {
		k.console.Echo(b)
	}

	return true
}

// Console returns the shared console.
func (k *Kernel) Console() *console.Shared {
	return k.console
}

// Keyboard returns the keyboard polled by Step.
func (k *Kernel) Keyboard() *keyboard.Keyboard {
	return k.keyboard
}

// Kmain boots the kernel on bus and runs the polling loop forever. Boot
// failures halt the CPU.
//
//go:noinline
func Kmain(bus device.Bus, magic, mbi uint32) {
	k, err := Boot(bus, magic, mbi)
	if err != nil {
		panicFn(err)
		return
	}

	for {
		k.Step()
	}
}
