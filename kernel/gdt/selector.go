package gdt

// Selector names a descriptor table entry and the requested privilege level:
// (index << 3) | ring. Bit 2 (table indicator) is always clear as the kernel
// has no LDT.
type Selector uint16

// Privilege rings used by the kernel.
const (
	RingKernel uint8 = 0
	RingUser   uint8 = 3
)

// Selectors for the entries of the installed table.
const (
	KernelCodeSelector  Selector = 1 << 3
	KernelDataSelector  Selector = 2 << 3
	KernelStackSelector Selector = 3 << 3
	UserCodeSelector    Selector = (4 << 3) | 0b11
	UserDataSelector    Selector = (5 << 3) | 0b11
	UserStackSelector   Selector = (6 << 3) | 0b11
)

// NewSelector returns the selector for the entry at index with the requested
// privilege level.
func NewSelector(index uint16, ring uint8) Selector {
	return Selector(index<<3 | uint16(ring&0b11))
}

// Index returns the descriptor table index addressed by the selector.
func (s Selector) Index() uint16 {
	return uint16(s) >> 3
}

// Ring returns the requested privilege level encoded in the selector.
func (s Selector) Ring() uint8 {
	return uint8(s & 0b11)
}
