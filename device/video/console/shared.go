package console

import (
	"kfs/kernel/sync"
	"sync/atomic"
)

// Shared serializes access to a console Device. Primary output paths such as
// keyboard echo wait for the lock. Diagnostic output written through the
// io.Writer interface is best effort: if the console is busy the write is
// dropped instead of stalling the caller.
type Shared struct {
	lock *sync.Lock[Device]

	dropped atomic.Uint32
}

// NewShared returns a Shared console that owns dev.
func NewShared(dev Device) *Shared {
	return &Shared{lock: sync.NewLock(dev)}
}

// Init switches the console to the default colors and clears it. It returns
// false if the console was busy.
func (s *Shared) Init() bool {
	return s.lock.TryWith(func(dev *Device) {
		(*dev).SetColor(DefaultFg, DefaultBg)
		(*dev).ClearScreen()
	})
}

// Write implements io.Writer. Bytes that cannot be displayed are replaced by
// Placeholder. If the console is busy, p is discarded. Write always reports
// len(p) bytes written.
func (s *Shared) Write(p []byte) (int, error) {
	if !s.lock.TryWith(func(dev *Device) { writeSubstituted(*dev, p) }) {
		s.dropped.Add(1)
	}

	return len(p), nil
}

// Dropped returns the number of writes discarded because the console was
// busy.
func (s *Shared) Dropped() uint32 {
	return s.dropped.Load()
}

// WriteByte waits for the console and writes b without substitution.
func (s *Shared) WriteByte(b byte) error {
	s.lock.With(func(dev *Device) { _ = (*dev).WriteByte(b) })
	return nil
}

// Backspace waits for the console and erases the cell before the cursor.
func (s *Shared) Backspace() {
	s.lock.With(func(dev *Device) { (*dev).Backspace() })
}

// Echo writes a byte produced by the keyboard: the backspace control byte
// erases the previous cell and any other byte is written as-is.
func (s *Shared) Echo(b byte) {
	if b == 0x08 {
		s.Backspace()
		return
	}

	_ = s.WriteByte(b)
}

// WithColor sets the console colors to fg and bg, invokes fn with the locked
// device and restores the previous colors once fn returns. fn must write to
// the supplied device; writes through s would deadlock or be dropped.
func (s *Shared) WithColor(fg, bg Color, fn func(Device)) {
	s.lock.With(func(dev *Device) {
		prevFg, prevBg := UnpackColor((*dev).ColorCode())
		(*dev).SetColor(fg, bg)
		fn(*dev)
		(*dev).SetColor(prevFg, prevBg)
	})
}

// With waits for the console and invokes fn with the locked device.
func (s *Shared) With(fn func(Device)) {
	s.lock.With(func(dev *Device) { fn(*dev) })
}
