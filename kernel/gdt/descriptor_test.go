package gdt

import "testing"

func TestDescriptorEncoding(t *testing.T) {
	specs := []struct {
		base, limit   uint32
		access, flags uint8
	}{
		{0, 0, 0, 0},
		{0, LimitFlat, AccessCode, FlagsFlat},
		{0xFFFFFFFF, 0xFFFFF, 0xFF, 0xF},
		{0x12345678, 0xABCDE, 0x92, 0x4},
		{0x00B8000, 0x00FFF, 0x96 | 3<<5, 0x8},
		{0xDEADBEEF, 0x00001, 0x01, 0x1},
		{0x80000000, 0x80000, 0x80, 0x2},
	}

	for specIndex, spec := range specs {
		d := NewDescriptor(spec.base, spec.limit, spec.access, spec.flags)

		if got := d.Base(); got != spec.base {
			t.Errorf("[spec %d] expected base 0x%x; got 0x%x", specIndex, spec.base, got)
		}
		if got := d.Limit(); got != spec.limit {
			t.Errorf("[spec %d] expected limit 0x%x; got 0x%x", specIndex, spec.limit, got)
		}
		if got := d.Access(); got != spec.access {
			t.Errorf("[spec %d] expected access 0x%x; got 0x%x", specIndex, spec.access, got)
		}
		if got := d.Flags(); got != spec.flags {
			t.Errorf("[spec %d] expected flags 0x%x; got 0x%x", specIndex, spec.flags, got)
		}
	}
}

func TestDescriptorBitLayout(t *testing.T) {
	d := NewDescriptor(0xAABBCCDD, 0xEFFFF, 0x9A, 0xC)

	specs := []struct {
		shift uint
		mask  uint64
		exp   uint64
	}{
		{0, 0xFFFF, 0xFFFF},  // limit[15:0]
		{16, 0xFFFF, 0xCCDD}, // base[15:0]
		{32, 0xFF, 0xBB},     // base[23:16]
		{40, 0xFF, 0x9A},     // access
		{48, 0xF, 0xE},       // limit[19:16]
		{52, 0xF, 0xC},       // flags
		{56, 0xFF, 0xAA},     // base[31:24]
	}

	for specIndex, spec := range specs {
		if got := (uint64(d) >> spec.shift) & spec.mask; got != spec.exp {
			t.Errorf("[spec %d] expected bits at %d to be 0x%x; got 0x%x", specIndex, spec.shift, spec.exp, got)
		}
	}
}

func TestDescriptorInputMasking(t *testing.T) {
	// Only the low 20 bits of the limit and the low nibble of the flags
	// are encoded.
	d := NewDescriptor(0, 0xFFF12345, 0x92, 0xFC)

	if exp, got := uint32(0x12345), d.Limit(); got != exp {
		t.Errorf("expected limit 0x%x; got 0x%x", exp, got)
	}
	if exp, got := uint8(0xC), d.Flags(); got != exp {
		t.Errorf("expected flags 0x%x; got 0x%x", exp, got)
	}
	if exp, got := uint8(0x92), d.Access(); got != exp {
		t.Errorf("expected access byte to be untouched (0x%x); got 0x%x", exp, got)
	}
}

func TestFlatDescriptorValue(t *testing.T) {
	// The well-known encoding of a flat ring 0 code segment.
	if exp, got := Descriptor(0x00CF9A000000FFFF), codeSegment(RingKernel); got != exp {
		t.Fatalf("expected kernel code descriptor 0x%016x; got 0x%016x", uint64(exp), uint64(got))
	}

	if exp, got := Descriptor(0x00CFF2000000FFFF), dataSegment(RingUser); got != exp {
		t.Fatalf("expected user data descriptor 0x%016x; got 0x%016x", uint64(exp), uint64(got))
	}
}
