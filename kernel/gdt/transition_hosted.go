//go:build !386

package gdt

import "kfs/kernel"

var errNoSegmentation = &kernel.Error{Module: "gdt", Message: "descriptor tables can only be loaded on 386"}

// loadAndJump cannot switch segments on a hosted build.
func loadAndJump(_, _ *[6]byte, _, _ Selector, _ uintptr, _, _ uint32) {
	panic(errNoSegmentation)
}

// Hosted builds have no kernel stack; a zero range makes DumpStack report
// the stack pointer as out of range.
func stackBounds() (uintptr, uintptr) { return 0, 0 }

func stackPointer() uintptr { return 0 }
