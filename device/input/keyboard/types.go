package keyboard

// Modifiers is a bitmask of the modifier keys held down when an event was
// decoded.
type Modifiers uint8

// The supported modifier bits. Only Shift is currently tracked by the
// decoder; the remaining bits are reserved for the control, alt and caps lock
// keys.
const (
	Shift Modifiers = 1 << iota
	Ctrl
	Alt
	Caps
)

// Has returns true if all bits in mask are set.
func (m Modifiers) Has(mask Modifiers) bool {
	return m&mask == mask
}

// KeyKind identifies the class of a decoded key.
type KeyKind uint8

// The supported key kinds.
const (
	// KindUnknown is used for scancodes without a printable identity such
	// as modifier keys or unmapped keys. The KeyCode value carries the raw
	// scancode.
	KindUnknown KeyKind = iota

	// KindChar is used for printable ASCII characters. The KeyCode value
	// carries the character.
	KindChar

	KindEnter
	KindBackspace
	KindTab
)

// String returns the name of the key kind.
func (k KeyKind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindEnter:
		return "enter"
	case KindBackspace:
		return "backspace"
	case KindTab:
		return "tab"
	default:
		return "unknown"
	}
}

// KeyCode is the resolved identity of a key.
type KeyCode struct {
	Kind KeyKind

	// Value is the character for KindChar, the raw scancode for
	// KindUnknown and zero otherwise.
	Value uint8
}

// Char returns the KeyCode for the printable character ch.
func Char(ch uint8) KeyCode { return KeyCode{Kind: KindChar, Value: ch} }

// Unknown returns the KeyCode for an unrecognized scancode.
func Unknown(sc uint8) KeyCode { return KeyCode{Kind: KindUnknown, Value: sc} }

// Fixed key codes.
var (
	Enter     = KeyCode{Kind: KindEnter}
	Backspace = KeyCode{Kind: KindBackspace}
	Tab       = KeyCode{Kind: KindTab}
)

// KeyEvent describes a single key press or release.
type KeyEvent struct {
	Code KeyCode

	// Mods contains the modifier state after the event was applied.
	Mods Modifiers

	// Pressed is true for make codes and false for break codes.
	Pressed bool
}

// ASCII control bytes produced by PrintableByte.
const (
	ByteBackspace uint8 = 0x08
	ByteTab       uint8 = '\t'
	ByteNewline   uint8 = '\n'
)

// PrintableByte returns the byte that should be echoed for the event and true
// or false if the event has nothing to echo. Only key presses are echoed.
func (ev KeyEvent) PrintableByte() (uint8, bool) {
	if !ev.Pressed {
		return 0, false
	}

	switch ev.Code.Kind {
	case KindChar:
		return ev.Code.Value, true
	case KindEnter:
		return ByteNewline, true
	case KindBackspace:
		return ByteBackspace, true
	case KindTab:
		return ByteTab, true
	default:
		return 0, false
	}
}
