package gdt

import (
	"io"
	"kfs/kernel/kfmt"
)

const (
	// TableEntries is the number of descriptors in the kernel table.
	TableEntries = 7

	// TableSize is the size of the table in bytes.
	TableSize = TableEntries * 8

	// TablePhysAddr is the physical address the table is copied to before
	// it is loaded. Only this copy is ever referenced by the processor.
	TablePhysAddr uintptr = 0x0000_0800
)

// Table is the kernel descriptor table: the mandatory null descriptor,
// kernel code/data/stack at ring 0 and user code/data/stack at ring 3.
type Table [TableEntries]Descriptor

// template is the table copied to TablePhysAddr by InitWithEntry.
var template = Table{
	0,
	codeSegment(RingKernel),
	dataSegment(RingKernel),
	stackSegment(RingKernel),
	codeSegment(RingUser),
	dataSegment(RingUser),
	stackSegment(RingUser),
}

// Template returns a copy of the table installed at boot.
func Template() Table {
	return template
}

// Lookup returns the descriptor addressed by sel and true if sel names a live
// (present, non-null) entry of the table.
func (t *Table) Lookup(sel Selector) (Descriptor, bool) {
	index := sel.Index()
	if index == 0 || int(index) >= len(t) {
		return 0, false
	}

	d := t[index]
	return d, d.Present()
}

// Dump prints one line per table entry to w.
func (t *Table) Dump(w io.Writer) {
	for index, d := range t {
		if index == 0 {
			kfmt.Fprintf(w, "gdt[0] null\n")
			continue
		}

		kfmt.Fprintf(w, "gdt[%d] sel=0x%2X base=0x%8X limit=0x%5X access=0x%2X flags=0x%X ring=%d\n",
			index,
			uint16(NewSelector(uint16(index), d.Ring())),
			d.Base(),
			d.Limit(),
			d.Access(),
			d.Flags(),
			d.Ring(),
		)
	}
}
