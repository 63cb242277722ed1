package cpu

// KernelStackSize is the size of the statically reserved kernel stack.
const KernelStackSize = 16384

// Halt disables interrupts and stops instruction execution. It never
// returns.
func Halt()

// Pause hints the processor that the caller is inside a spin-wait loop.
func Pause()

// PortWriteByte writes a uint8 value to the requested port.
func PortWriteByte(port uint16, val uint8)

// PortReadByte reads a uint8 value from the requested port.
func PortReadByte(port uint16) uint8

// StackPointer returns the current value of the ESP register.
func StackPointer() uintptr

// StackBounds returns the bottom and top addresses of the kernel stack.
// The stack grows down from top; top itself is not part of the region.
func StackBounds() (bottom, top uintptr)
