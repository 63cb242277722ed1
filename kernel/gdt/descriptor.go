// Package gdt builds the flat global descriptor table used by the kernel and
// performs the one-shot transition that installs it.
package gdt

// Descriptor is a packed 64-bit segment descriptor:
//
//	bits  0-15  limit[15:0]
//	bits 16-31  base[15:0]
//	bits 32-39  base[23:16]
//	bits 40-47  access byte (present, DPL, type)
//	bits 48-51  limit[19:16]
//	bits 52-55  flags (granularity, operand size)
//	bits 56-63  base[31:24]
type Descriptor uint64

// Access byte values for the flat segments. The DPL bits are or-ed in by
// privilegeMask.
const (
	AccessCode  uint8 = 0x9A // present, code, readable
	AccessData  uint8 = 0x92 // present, data, writable
	AccessStack uint8 = 0x96 // present, data, writable, expand-down

	accessPresent uint8 = 1 << 7
)

const (
	// LimitFlat is the 20-bit limit that, combined with 4 KiB granularity,
	// spans the whole 32-bit address space.
	LimitFlat uint32 = 0x000F_FFFF

	// FlagsFlat selects 4 KiB granularity and 32-bit operand size.
	FlagsFlat uint8 = 0b1100
)

// NewDescriptor packs base, limit, access and flags into a Descriptor. Only
// the low 20 bits of limit and the low 4 bits of flags are used.
func NewDescriptor(base, limit uint32, access, flags uint8) Descriptor {
	var value uint64
	value |= uint64(limit & 0xFFFF)
	value |= uint64(base&0xFFFF) << 16
	value |= uint64((base>>16)&0xFF) << 32
	value |= uint64(access) << 40
	value |= uint64((limit>>16)&0xF) << 48
	value |= uint64(flags&0xF) << 52
	value |= uint64((base>>24)&0xFF) << 56
	return Descriptor(value)
}

// Base returns the 32-bit segment base address.
func (d Descriptor) Base() uint32 {
	return uint32((d>>16)&0xFFFF) |
		uint32((d>>32)&0xFF)<<16 |
		uint32((d>>56)&0xFF)<<24
}

// Limit returns the raw 20-bit segment limit.
func (d Descriptor) Limit() uint32 {
	return uint32(d&0xFFFF) | uint32((d>>48)&0xF)<<16
}

// Access returns the access byte.
func (d Descriptor) Access() uint8 {
	return uint8(d >> 40)
}

// Flags returns the flags nibble.
func (d Descriptor) Flags() uint8 {
	return uint8((d >> 52) & 0xF)
}

// Ring returns the descriptor privilege level.
func (d Descriptor) Ring() uint8 {
	return (d.Access() >> 5) & 0b11
}

// Present returns true if the present bit of the access byte is set.
func (d Descriptor) Present() bool {
	return d.Access()&accessPresent != 0
}

func privilegeMask(ring uint8) uint8 {
	return (ring & 0b11) << 5
}

func codeSegment(ring uint8) Descriptor {
	return NewDescriptor(0, LimitFlat, AccessCode|privilegeMask(ring), FlagsFlat)
}

func dataSegment(ring uint8) Descriptor {
	return NewDescriptor(0, LimitFlat, AccessData|privilegeMask(ring), FlagsFlat)
}

// stackSegment uses its own descriptor so that the stack privilege bits can
// be changed independently of the data segment.
func stackSegment(ring uint8) Descriptor {
	return NewDescriptor(0, LimitFlat, AccessStack|privilegeMask(ring), FlagsFlat)
}
