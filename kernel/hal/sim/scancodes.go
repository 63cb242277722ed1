package sim

import "kfs/device/input/keyboard"

// Set 1 scancodes used when typing.
const (
	scLeftShift uint8 = 0x2A
	scEnter     uint8 = 0x1C
	scBackspace uint8 = 0x0E
	scTab       uint8 = 0x0F
	scBreak     uint8 = 0x80

	// scKeypadStart is the first keypad scancode. Keys of the main block
	// are preferred when reversing the keymap.
	scKeypadStart = 0x47
)

// ScancodesFor returns the make/break sequence that types b on a US keyboard
// or nil if b cannot be typed. Shifted characters are wrapped in left shift
// make/break codes. Carriage returns are typed as Enter and DEL as
// Backspace.
func ScancodesFor(b byte) []uint8 {
	switch b {
	case '\n', '\r':
		return press(scEnter)
	case 0x08, 0x7F:
		return press(scBackspace)
	case '\t':
		return press(scTab)
	}

	if b < 0x20 || b > 0x7E {
		return nil
	}

	plain, shifted := keyboard.Keymap()
	if sc, ok := find(&plain, b, 1, scKeypadStart); ok {
		return press(sc)
	}
	if sc, ok := find(&shifted, b, 1, scKeypadStart); ok {
		return append(append([]uint8{scLeftShift}, press(sc)...), scLeftShift|scBreak)
	}
	if sc, ok := find(&plain, b, scKeypadStart, len(plain)); ok {
		return press(sc)
	}

	return nil
}

func press(sc uint8) []uint8 {
	return []uint8{sc, sc | scBreak}
}

func find(table *[256]uint8, b byte, from, to int) (uint8, bool) {
	for sc := from; sc < to; sc++ {
		if table[sc] == b {
			return uint8(sc), true
		}
	}

	return 0, false
}
