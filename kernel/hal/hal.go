// Package hal detects the hardware attached to a device.Bus and initializes
// the matching drivers.
package hal

import (
	"bytes"
	"kfs/device"
	"kfs/device/input/keyboard"
	"kfs/device/video/console"
	"kfs/kernel/kfmt"
)

// Devices contains the devices discovered by DetectHardware.
type Devices struct {
	// Console is the shared console built around the first initialized
	// console device or nil if no console was found.
	Console *console.Shared

	// Keyboard is the first initialized keyboard or nil.
	Keyboard *keyboard.Keyboard

	// Drivers tracks all initialized device drivers in init order.
	Drivers []device.Driver
}

// strBuf holds the prefix of the driver being initialized.
var strBuf bytes.Buffer

// DetectHardware probes bus for the registered drivers in detection order and
// initializes the drivers whose hardware is present. Once a console is
// initialized it becomes the kfmt output sink so that the init output of the
// remaining drivers, and any output buffered so far, is shown on screen.
func DetectHardware(bus device.Bus) Devices {
	var devices Devices
	probe(bus, device.DriverList(), &devices)
	return devices
}

// probe executes the probe function for each driver and invokes
// onDriverInit for each successfully initialized driver.
func probe(bus device.Bus, driverInfoList device.DriverInfoList, devices *Devices) {
	// A nil sink follows the kfmt output sink, which changes once a
	// console has been initialized.
	var w kfmt.PrefixWriter

	for _, info := range driverInfoList {
		drv := info.Probe(bus)
		if drv == nil {
			continue
		}

		strBuf.Reset()
		major, minor, patch := drv.DriverVersion()
		kfmt.Fprintf(&strBuf, "[hal] %s(%d.%d.%d): ", drv.DriverName(), major, minor, patch)
		w.Prefix = strBuf.Bytes()

		if err := drv.DriverInit(&w); err != nil {
			kfmt.Fprintf(&w, "init failed: %s\n", err.Message)
			continue
		}

		kfmt.Fprintf(&w, "initialized\n")
		devices.Drivers = append(devices.Drivers, drv)
		onDriverInit(drv, devices)
	}
}

// onDriverInit is invoked by probe() whenever a piece of hardware is detected
// and successfully initialized. The first console becomes the kfmt output
// sink.
func onDriverInit(drv device.Driver, devices *Devices) {
	switch drvImpl := drv.(type) {
	case console.Device:
		if devices.Console != nil {
			return
		}

		devices.Console = console.NewShared(drvImpl)
		devices.Console.Init()
		kfmt.SetOutputSink(devices.Console)
	case *keyboard.Keyboard:
		if devices.Keyboard == nil {
			devices.Keyboard = drvImpl
		}
	}
}
