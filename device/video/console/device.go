// Package console contains the text console drivers and the shared console
// used by the kernel for all of its output.
package console

// Color is one of the 16 colors supported by text mode consoles.
type Color uint8

// The supported colors.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// Default colors used by a freshly initialized console.
const (
	DefaultFg = LightGray
	DefaultBg = Black
)

// PackColor returns the attribute byte for the fg and bg pair. The
// foreground occupies the low nibble and the background the high nibble.
func PackColor(fg, bg Color) uint8 {
	return uint8(bg&0xF)<<4 | uint8(fg&0xF)
}

// UnpackColor splits an attribute byte into its foreground and background
// colors.
func UnpackColor(code uint8) (fg, bg Color) {
	return Color(code & 0xF), Color(code >> 4)
}

// Placeholder is written in place of bytes that cannot be displayed by
// WriteString.
const Placeholder byte = 0xFE

// The Device interface is implemented by objects that can function as system
// consoles.
type Device interface {
	// ClearScreen fills the console with blanks using the current color
	// and moves the cursor to the top-left corner.
	ClearScreen()

	// SetColor sets the colors used by subsequent writes.
	SetColor(fg, bg Color)

	// ColorCode returns the current attribute byte.
	ColorCode() uint8

	// WriteByte writes b at the cursor position and advances the cursor.
	// A newline moves the cursor to the start of the next line. Any other
	// byte value is written as-is.
	WriteByte(b byte) error

	// WriteBytes writes each byte of p via WriteByte.
	WriteBytes(p []byte)

	// Backspace moves the cursor back by one cell and blanks that cell.
	Backspace()

	// Cursor returns the current cursor position.
	Cursor() (row, col int)
}

// printable returns b if the console can display it or Placeholder otherwise.
func printable(b byte) byte {
	if (b >= 0x20 && b <= 0x7E) || b == '\n' {
		return b
	}

	return Placeholder
}

// WriteString writes s to dev replacing any bytes outside the printable ASCII
// range (other than newlines) with Placeholder.
func WriteString(dev Device, s string) {
	for i := 0; i < len(s); i++ {
		_ = dev.WriteByte(printable(s[i]))
	}
}

func writeSubstituted(dev Device, p []byte) {
	for _, b := range p {
		_ = dev.WriteByte(printable(b))
	}
}
