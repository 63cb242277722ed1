package kmain

import (
	"kfs/kernel/gdt"
	"kfs/kernel/hal"
)

// StartKernel is invoked by the boot assembly code with the values that the
// boot loader left in EAX and EBX. It installs the kernel descriptor table
// and continues at kernelEntry on the kernel stack. StartKernel never
// returns.
//
//go:noinline
func StartKernel(magic, mbi uint32) {
	gdt.InitWithEntry(kernelEntry, magic, mbi)

	// Only reached if the far jump somehow returns.
	panicFn(errKmainReturned)
}

// kernelEntry runs once the kernel segments are active.
func kernelEntry(magic, mbi uint32) {
	Kmain(hal.Machine{}, magic, mbi)
	panicFn(errKmainReturned)
}
