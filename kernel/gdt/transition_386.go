package gdt

import "kfs/kernel/cpu"

// loadAndJump executes CLI, LGDT [gdtr], reloads the data and stack segment
// registers, switches to stackTop, pushes the entry arguments and performs a
// far jump through target. It never returns.
func loadAndJump(gdtr, target *[6]byte, dataSel, stackSel Selector, stackTop uintptr, magic, mbi uint32)

func stackBounds() (uintptr, uintptr) { return cpu.StackBounds() }

func stackPointer() uintptr { return cpu.StackPointer() }
