package console

import (
	"io"
	"kfs/device"
	"kfs/kernel"
	"kfs/kernel/kfmt"
)

// Text mode geometry and hardware locations.
const (
	Width  = 80
	Height = 25

	// FramebufferPhysAddr is the physical address of the mode 0x3 text
	// buffer.
	FramebufferPhysAddr uintptr = 0x000B_8000

	crtcIndexPort uint16 = 0x3D4
	crtcDataPort  uint16 = 0x3D5

	crtcCursorLow  uint8 = 0x0F
	crtcCursorHigh uint8 = 0x0E
)

var errTooSmall = &kernel.Error{Module: "vga_text", Message: "text buffer is smaller than the console"}

// VgaTextConsole implements an 80x25 text console using VGA mode 0x3.
//
// Each cell of the buffer is a 16-bit value: the low byte holds the character
// code and the high byte holds the attribute (background color in the high
// nibble, foreground color in the low nibble).
//
// The cursor column may equal Width after the last column of a row has been
// written. The wrap to the next row is deferred until the next printable
// byte so a character is never written past the last column.
type VgaTextConsole struct {
	cells device.CellBuffer
	ports device.PortIO

	row, col int
	color    uint8
}

// NewVgaTextConsole creates a console that draws to cells and programs the
// hardware cursor via ports. The console starts with light gray text on a
// black background; its contents are left untouched until ClearScreen is
// called.
func NewVgaTextConsole(cells device.CellBuffer, ports device.PortIO) *VgaTextConsole {
	return &VgaTextConsole{
		cells: cells,
		ports: ports,
		color: PackColor(DefaultFg, DefaultBg),
	}
}

// Cursor returns the current cursor position.
func (cons *VgaTextConsole) Cursor() (int, int) {
	return cons.row, cons.col
}

// ColorCode returns the current attribute byte.
func (cons *VgaTextConsole) ColorCode() uint8 {
	return cons.color
}

// SetColor sets the colors used by subsequent writes.
func (cons *VgaTextConsole) SetColor(fg, bg Color) {
	cons.color = PackColor(fg, bg)
}

// ClearScreen fills every cell with a blank of the current color and moves
// the cursor to the top-left corner.
func (cons *VgaTextConsole) ClearScreen() {
	for row := 0; row < Height; row++ {
		cons.clearRow(row)
	}

	cons.row, cons.col = 0, 0
	cons.updateCursor()
}

// WriteByte writes b at the cursor and advances it. It never fails.
func (cons *VgaTextConsole) WriteByte(b byte) error {
	if b == '\n' {
		cons.newline()
	} else {
		if cons.col >= Width {
			cons.newline()
		}

		cons.cells.WriteCell(cons.row*Width+cons.col, cons.pack(b))
		cons.col++
	}

	cons.updateCursor()
	return nil
}

// WriteBytes writes each byte of p without any substitution.
func (cons *VgaTextConsole) WriteBytes(p []byte) {
	for _, b := range p {
		_ = cons.WriteByte(b)
	}
}

// Backspace moves the cursor one cell back, wrapping to the last column of
// the previous row, and blanks the cell under the cursor. At the top-left
// corner only the hardware cursor is refreshed.
func (cons *VgaTextConsole) Backspace() {
	switch {
	case cons.col > 0:
		cons.col--
	case cons.row > 0:
		cons.row--
		cons.col = Width - 1
	default:
		cons.updateCursor()
		return
	}

	cons.cells.WriteCell(cons.row*Width+cons.col, cons.pack(' '))
	cons.updateCursor()
}

// newline moves the cursor to the start of the next row scrolling the
// contents up by one row if the cursor is on the last row.
func (cons *VgaTextConsole) newline() {
	cons.col = 0
	if cons.row < Height-1 {
		cons.row++
		return
	}

	for row := 1; row < Height; row++ {
		for col := 0; col < Width; col++ {
			cons.cells.WriteCell((row-1)*Width+col, cons.cells.ReadCell(row*Width+col))
		}
	}

	cons.clearRow(Height - 1)
}

func (cons *VgaTextConsole) clearRow(row int) {
	blank := cons.pack(' ')
	for col, offset := 0, row*Width; col < Width; col++ {
		cons.cells.WriteCell(offset+col, blank)
	}
}

func (cons *VgaTextConsole) pack(ch byte) uint16 {
	return uint16(cons.color)<<8 | uint16(ch)
}

// updateCursor programs the CRTC cursor location registers with the linear
// cursor offset.
func (cons *VgaTextConsole) updateCursor() {
	pos := uint16(cons.row*Width + cons.col)

	cons.ports.OutByte(crtcIndexPort, crtcCursorLow)
	cons.ports.OutByte(crtcDataPort, uint8(pos))
	cons.ports.OutByte(crtcIndexPort, crtcCursorHigh)
	cons.ports.OutByte(crtcDataPort, uint8(pos>>8))
}

// DriverName returns the name of this driver.
func (cons *VgaTextConsole) DriverName() string {
	return "vga_text_console"
}

// DriverVersion returns the version of this driver.
func (cons *VgaTextConsole) DriverVersion() (uint16, uint16, uint16) {
	return 0, 1, 0
}

// DriverInit initializes this driver.
func (cons *VgaTextConsole) DriverInit(w io.Writer) *kernel.Error {
	if cons.cells.Len() < Width*Height {
		return errTooSmall
	}

	kfmt.Fprintf(w, "%dx%d text buffer at 0x%x\n", Width, Height, FramebufferPhysAddr)
	return nil
}
