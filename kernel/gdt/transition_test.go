package gdt

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestPointerEncoding(t *testing.T) {
	gdtr := Pointer{Limit: TableSize - 1, Base: uint32(TablePhysAddr)}.encode()
	if exp := [6]byte{0x37, 0x00, 0x00, 0x08, 0x00, 0x00}; gdtr != exp {
		t.Errorf("expected encoded GDTR to be %x; got %x", exp, gdtr)
	}

	far := FarPointer{Offset: 0x00101234, Selector: KernelCodeSelector}.encode()
	if exp := [6]byte{0x34, 0x12, 0x10, 0x00, 0x08, 0x00}; far != exp {
		t.Errorf("expected encoded far pointer to be %x; got %x", exp, far)
	}
}

func TestInitWithEntry(t *testing.T) {
	defer func(origMemcopy func(uintptr, uintptr, uintptr), origLoadAndJump func(*[6]byte, *[6]byte, Selector, Selector, uintptr, uint32, uint32), origStackBounds func() (uintptr, uintptr)) {
		memcopyFn = origMemcopy
		loadAndJumpFn = origLoadAndJump
		stackBoundsFn = origStackBounds
	}(memcopyFn, loadAndJumpFn, stackBoundsFn)

	type copyCall struct {
		Src, Dst, Size uintptr
	}

	type jumpCall struct {
		GDTR, Target      [6]byte
		DataSel, StackSel Selector
		StackTop          uintptr
		Magic, MBI        uint32
	}

	var (
		copies []copyCall
		jumps  []jumpCall
		entry  = func(_, _ uint32) {}
	)

	memcopyFn = func(src, dst, size uintptr) {
		copies = append(copies, copyCall{src, dst, size})
	}
	stackBoundsFn = func() (uintptr, uintptr) {
		return 0x00104000, 0x00108000
	}
	loadAndJumpFn = func(gdtr, target *[6]byte, dataSel, stackSel Selector, stackTop uintptr, magic, mbi uint32) {
		jumps = append(jumps, jumpCall{*gdtr, *target, dataSel, stackSel, stackTop, magic, mbi})
	}

	InitWithEntry(entry, 0x2BADB002, 0x00010000)

	expCopies := []copyCall{
		{uintptr(unsafe.Pointer(&template[0])), 0x800, 56},
	}
	if diff := cmp.Diff(expCopies, copies); diff != "" {
		t.Errorf("unexpected table copy (-want +got):\n%s", diff)
	}

	entryPC := uint32(funcPC(entry))
	expJumps := []jumpCall{
		{
			GDTR: [6]byte{0x37, 0x00, 0x00, 0x08, 0x00, 0x00},
			Target: [6]byte{
				byte(entryPC), byte(entryPC >> 8), byte(entryPC >> 16), byte(entryPC >> 24),
				0x08, 0x00,
			},
			DataSel:  KernelDataSelector,
			StackSel: KernelStackSelector,
			StackTop: 0x00108000,
			Magic:    0x2BADB002,
			MBI:      0x00010000,
		},
	}
	if diff := cmp.Diff(expJumps, jumps); diff != "" {
		t.Errorf("unexpected load-and-jump call (-want +got):\n%s", diff)
	}
}

func TestFuncPC(t *testing.T) {
	var fn EntryFn = func(_, _ uint32) {}
	if funcPC(fn) == 0 {
		t.Fatal("expected funcPC to return a non-zero code address")
	}
}
