package keyboard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeShiftSequence(t *testing.T) {
	var d Decoder

	got := []KeyEvent{
		d.Decode(0x2A),
		d.Decode(0x1E),
		d.Decode(0x9E),
		d.Decode(0xAA),
		d.Decode(0x1E),
	}

	exp := []KeyEvent{
		{Code: Unknown(0x2A), Mods: Shift, Pressed: true},
		{Code: Char('A'), Mods: Shift, Pressed: true},
		{Code: Unknown(0x9E), Mods: Shift, Pressed: false},
		{Code: Unknown(0xAA), Mods: 0, Pressed: false},
		{Code: Char('a'), Mods: 0, Pressed: true},
	}

	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestDecodeRightShift(t *testing.T) {
	var d Decoder

	if ev := d.Decode(0x36); ev.Code != Unknown(0x36) || !ev.Mods.Has(Shift) || !ev.Pressed {
		t.Fatalf("expected right shift make to set shift; got %+v", ev)
	}

	if ev := d.Decode(0x02); ev.Code != Char('!') {
		t.Fatalf("expected shifted 0x02 to decode to '!'; got %+v", ev)
	}

	if ev := d.Decode(0xB6); ev.Code != Unknown(0xB6) || ev.Mods.Has(Shift) || ev.Pressed {
		t.Fatalf("expected right shift break to clear shift; got %+v", ev)
	}
}

func TestDecodeFixedKeys(t *testing.T) {
	specs := []struct {
		sc      uint8
		code    KeyCode
		pressed bool
	}{
		{0x1C, Enter, true},
		{0x9C, Enter, false},
		{0x0E, Backspace, true},
		{0x8E, Backspace, false},
		{0x0F, Tab, true},
		{0x8F, Tab, false},
	}

	for _, mods := range []Modifiers{0, Shift} {
		for specIndex, spec := range specs {
			d := Decoder{mods: mods}
			ev := d.Decode(spec.sc)

			exp := KeyEvent{Code: spec.code, Mods: mods, Pressed: spec.pressed}
			if ev != exp {
				t.Errorf("[spec %d] mods=%d: expected %+v; got %+v", specIndex, mods, exp, ev)
			}
		}
	}
}

func TestDecodeUnrecognized(t *testing.T) {
	specs := []struct {
		sc      uint8
		pressed bool
	}{
		{0x01, true},  // escape maps to a control byte
		{0x1D, true},  // control
		{0x38, true},  // alt
		{0x3A, true},  // caps lock
		{0x3B, true},  // F1
		{0x7F, true},  // outside the table contents
		{0x81, false}, // escape release
		{0xBB, false}, // F1 release
	}

	for specIndex, spec := range specs {
		var d Decoder
		ev := d.Decode(spec.sc)

		exp := KeyEvent{Code: Unknown(spec.sc), Pressed: spec.pressed}
		if ev != exp {
			t.Errorf("[spec %d] expected %+v; got %+v", specIndex, exp, ev)
		}
	}
}

func TestDecodeNeverSetsOtherModifiers(t *testing.T) {
	var d Decoder
	for sc := 0; sc < 256; sc++ {
		d.Decode(uint8(sc))
		if d.Mods()&(Ctrl|Alt|Caps) != 0 {
			t.Fatalf("unexpected modifiers 0x%x after scancode 0x%x", d.Mods(), sc)
		}
	}
}

func TestKeymapPrintable(t *testing.T) {
	specs := []struct {
		sc      uint8
		plain   uint8
		shifted uint8
	}{
		{0x02, '1', '!'},
		{0x0B, '0', ')'},
		{0x10, 'q', 'Q'},
		{0x1E, 'a', 'A'},
		{0x28, '\'', '"'},
		{0x29, '`', '~'},
		{0x2B, '\\', '|'},
		{0x35, '/', '?'},
		{0x39, ' ', ' '},
	}

	for specIndex, spec := range specs {
		if code, ok := translatePrintable(spec.sc, 0); !ok || code != Char(spec.plain) {
			t.Errorf("[spec %d] expected plain 0x%x to map to %q; got %+v, %t", specIndex, spec.sc, spec.plain, code, ok)
		}
		if code, ok := translatePrintable(spec.sc, Shift); !ok || code != Char(spec.shifted) {
			t.Errorf("[spec %d] expected shifted 0x%x to map to %q; got %+v, %t", specIndex, spec.sc, spec.shifted, code, ok)
		}
	}

	// Entries below the printable threshold are rejected.
	for _, sc := range []uint8{0x00, 0x01, 0x0E, 0x0F, 0x1C} {
		if code, ok := translatePrintable(sc, 0); ok {
			t.Errorf("expected 0x%x not to map to a printable character; got %+v", sc, code)
		}
	}
}

func TestPrintableByte(t *testing.T) {
	specs := []struct {
		ev    KeyEvent
		exp   uint8
		expOK bool
	}{
		{KeyEvent{Code: Char('x'), Pressed: true}, 'x', true},
		{KeyEvent{Code: Char('x'), Pressed: false}, 0, false},
		{KeyEvent{Code: Enter, Pressed: true}, '\n', true},
		{KeyEvent{Code: Enter, Pressed: false}, 0, false},
		{KeyEvent{Code: Backspace, Pressed: true}, 0x08, true},
		{KeyEvent{Code: Tab, Pressed: true}, '\t', true},
		{KeyEvent{Code: Tab, Pressed: false}, 0, false},
		{KeyEvent{Code: Unknown(0x2A), Mods: Shift, Pressed: true}, 0, false},
		{KeyEvent{Code: Unknown(0xAA), Pressed: false}, 0, false},
	}

	for specIndex, spec := range specs {
		got, ok := spec.ev.PrintableByte()
		if got != spec.exp || ok != spec.expOK {
			t.Errorf("[spec %d] expected (0x%x, %t); got (0x%x, %t)", specIndex, spec.exp, spec.expOK, got, ok)
		}
	}
}

func TestKeyKindString(t *testing.T) {
	specs := map[KeyKind]string{
		KindUnknown:   "unknown",
		KindChar:      "char",
		KindEnter:     "enter",
		KindBackspace: "backspace",
		KindTab:       "tab",
		KeyKind(42):   "unknown",
	}

	for kind, exp := range specs {
		if got := kind.String(); got != exp {
			t.Errorf("expected kind %d to be named %q; got %q", kind, exp, got)
		}
	}
}
