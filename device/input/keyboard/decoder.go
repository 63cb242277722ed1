package keyboard

// Scancodes with a fixed meaning in scan code set 1.
const (
	scLeftShift  uint8 = 0x2A
	scRightShift uint8 = 0x36
	scEnter      uint8 = 0x1C
	scBackspace  uint8 = 0x0E
	scTab        uint8 = 0x0F

	breakBit uint8 = 0x80
)

// Decoder turns a stream of set 1 scancodes into key events. The only state
// it keeps is the set of held modifiers. The zero value is ready to use.
type Decoder struct {
	mods Modifiers
}

// Mods returns the current modifier state.
func (d *Decoder) Mods() Modifiers {
	return d.mods
}

// Decode consumes a single scancode and returns the event it describes. The
// event carries the modifier state after the scancode has been applied.
func (d *Decoder) Decode(sc uint8) KeyEvent {
	if sc&breakBit != 0 {
		return d.onBreak(sc)
	}

	return d.onMake(sc)
}

func (d *Decoder) onMake(sc uint8) KeyEvent {
	var code KeyCode

	switch sc {
	case scLeftShift, scRightShift:
		d.mods |= Shift
		code = Unknown(sc)
	case scEnter:
		code = Enter
	case scBackspace:
		code = Backspace
	case scTab:
		code = Tab
	default:
		var ok bool
		if code, ok = translatePrintable(sc, d.mods); !ok {
			code = Unknown(sc)
		}
	}

	return KeyEvent{Code: code, Mods: d.mods, Pressed: true}
}

// onBreak handles key releases. Releases of printable keys are not
// translated; they are reported as unknown and carry the raw break code.
func (d *Decoder) onBreak(sc uint8) KeyEvent {
	var code KeyCode

	switch sc &^ breakBit {
	case scLeftShift, scRightShift:
		d.mods &^= Shift
		code = Unknown(sc)
	case scEnter:
		code = Enter
	case scBackspace:
		code = Backspace
	case scTab:
		code = Tab
	default:
		code = Unknown(sc)
	}

	return KeyEvent{Code: code, Mods: d.mods, Pressed: false}
}
