package console

import "kfs/device"

// probeForVgaTextConsole checks whether the text buffer can be mapped.
func probeForVgaTextConsole(bus device.Bus) device.Driver {
	cells := bus.MapCells(FramebufferPhysAddr, Width*Height)
	if cells == nil {
		return nil
	}

	return NewVgaTextConsole(cells, bus)
}

func init() {
	device.RegisterDriver(&device.DriverInfo{
		Order: device.DetectOrderEarly,
		Probe: probeForVgaTextConsole,
	})
}
