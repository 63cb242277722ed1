package main

import (
	"bytes"
	"strconv"

	"kfs/device/video/console"
	"kfs/kernel/hal/sim"
)

// vgaToANSI maps the low 3 bits of a VGA color to the matching ANSI color
// number.
var vgaToANSI = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// placeholderGlyph is shown for the console placeholder byte.
const placeholderGlyph = "■"

// screen holds the state needed to render the emulated text buffer.
type screen struct {
	width, height int
	colors        bool

	buf bytes.Buffer
}

func newScreen(colors bool) *screen {
	return &screen{width: console.Width, height: console.Height, colors: colors}
}

// render returns a frame that redraws the whole text buffer from the top-left
// corner of the terminal and leaves the terminal cursor at the position of
// the hardware cursor. The returned slice is only valid until the next call.
func (s *screen) render(cells sim.Cells, cursorOffset int) []byte {
	s.buf.Reset()
	s.buf.WriteString("\x1b[H")

	lastAttr := -1
	for row := 0; row < s.height; row++ {
		for col := 0; col < s.width; col++ {
			cell := cells[row*s.width+col]
			if attr := int(cell >> 8); s.colors && attr != lastAttr {
				s.writeAttr(uint8(attr))
				lastAttr = attr
			}
			s.writeChar(byte(cell))
		}

		if s.colors {
			s.buf.WriteString("\x1b[0m")
			lastAttr = -1
		}
		if row != s.height-1 {
			s.buf.WriteString("\r\n")
		}
	}

	row, col := cursorOffset/s.width, cursorOffset%s.width
	if row >= s.height {
		row, col = s.height-1, s.width-1
	}
	s.buf.WriteString("\x1b[")
	s.buf.WriteString(strconv.Itoa(row + 1))
	s.buf.WriteByte(';')
	s.buf.WriteString(strconv.Itoa(col + 1))
	s.buf.WriteByte('H')

	return s.buf.Bytes()
}

func (s *screen) writeAttr(attr uint8) {
	fg, bg := console.UnpackColor(attr)

	s.buf.WriteString("\x1b[")
	s.buf.WriteString(strconv.Itoa(ansiColor(fg, 30, 90)))
	s.buf.WriteByte(';')
	s.buf.WriteString(strconv.Itoa(ansiColor(bg, 40, 100)))
	s.buf.WriteByte('m')
}

func ansiColor(c console.Color, base, brightBase int) int {
	if c >= 8 {
		return brightBase + vgaToANSI[c&7]
	}
	return base + vgaToANSI[c&7]
}

func (s *screen) writeChar(ch byte) {
	switch {
	case ch == console.Placeholder:
		s.buf.WriteString(placeholderGlyph)
	case ch >= 0x20 && ch <= 0x7E:
		s.buf.WriteByte(ch)
	default:
		s.buf.WriteByte(' ')
	}
}
