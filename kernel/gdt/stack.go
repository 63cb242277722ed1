package gdt

import (
	"io"
	"kfs/kernel/kfmt"
	"unsafe"
)

// stackDumpEntries is the number of 32-bit words printed by DumpStack.
const stackDumpEntries = 8

// readWordFn is mocked by tests.
var readWordFn = func(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

// DumpStack prints the kernel stack range, the current stack pointer and up
// to stackDumpEntries words starting at the stack pointer. If the stack
// pointer lies outside the kernel stack a warning is printed instead of the
// dump.
func DumpStack(w io.Writer) {
	bottom, top := stackBoundsFn()
	esp := stackPointerFn()

	kfmt.Fprintf(w, "Kernel stack range: 0x%8X - 0x%8X\n", bottom, top)
	kfmt.Fprintf(w, "Current ESP: 0x%8X\n", esp)

	if esp < bottom || esp >= top {
		kfmt.Fprintf(w, "ESP is outside of the kernel stack!\n")
		return
	}

	for addr, count := esp, 0; addr < top && count < stackDumpEntries; addr, count = addr+4, count+1 {
		kfmt.Fprintf(w, "0x%8X: 0x%8X\n", addr, readWordFn(addr))
	}
}
