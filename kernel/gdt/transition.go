package gdt

import (
	"encoding/binary"
	"kfs/kernel"
	"unsafe"
)

var (
	// The following functions are mocked by tests.
	memcopyFn      = kernel.Memcopy
	loadAndJumpFn  = loadAndJump
	stackBoundsFn  = stackBounds
	stackPointerFn = stackPointer
)

// EntryFn is the routine that receives control once the new descriptor table
// is active. It runs on the kernel stack with the boot loader's magic value
// and boot-info address as arguments and must never return.
type EntryFn func(magic, mbi uint32)

// Pointer is the operand of the LGDT instruction.
type Pointer struct {
	Limit uint16
	Base  uint32
}

// encode returns the packed 6-byte in-memory form of p.
func (p Pointer) encode() [6]byte {
	var buf [6]byte
	binary.LittleEndian.PutUint16(buf[0:], p.Limit)
	binary.LittleEndian.PutUint32(buf[2:], p.Base)
	return buf
}

// FarPointer is the m16:32 operand of an indirect far jump.
type FarPointer struct {
	Offset   uint32
	Selector Selector
}

// encode returns the packed 6-byte in-memory form of p.
func (p FarPointer) encode() [6]byte {
	var buf [6]byte
	binary.LittleEndian.PutUint32(buf[0:], p.Offset)
	binary.LittleEndian.PutUint16(buf[4:], uint16(p.Selector))
	return buf
}

// InitWithEntry installs the kernel descriptor table and transfers control to
// entry through the kernel code segment. It must be called exactly once,
// before any other subsystem is touched. InitWithEntry:
//   - copies the table template to TablePhysAddr
//   - disables interrupts and loads GDTR with the copy
//   - reloads DS, ES, FS and GS with the kernel data selector
//   - reloads SS with the kernel stack selector and ESP with the top of the
//     kernel stack
//   - far-jumps to entry via the kernel code selector, which is the only way
//     to reload CS.
//
// magic and mbi are pushed onto the fresh stack as the arguments of entry.
// InitWithEntry never returns. A bad descriptor or jump target triggers a
// processor fault for which no handler exists.
func InitWithEntry(entry EntryFn, magic, mbi uint32) {
	memcopyFn(uintptr(unsafe.Pointer(&template[0])), TablePhysAddr, TableSize)

	gdtr := Pointer{
		Limit: TableSize - 1,
		Base:  uint32(TablePhysAddr),
	}.encode()

	target := FarPointer{
		Offset:   uint32(funcPC(entry)),
		Selector: KernelCodeSelector,
	}.encode()

	_, stackTop := stackBoundsFn()
	loadAndJumpFn(&gdtr, &target, KernelDataSelector, KernelStackSelector, stackTop, magic, mbi)
}

// funcPC returns the entry address of the code referenced by fn.
func funcPC(fn EntryFn) uintptr {
	return **(**uintptr)(unsafe.Pointer(&fn))
}
