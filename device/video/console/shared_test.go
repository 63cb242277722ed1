package console

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSharedInit(t *testing.T) {
	cells := make(memCells, Width*Height)
	cons := NewVgaTextConsole(cells, &recordingPorts{})
	cons.SetColor(Red, Blue)
	cons.row, cons.col = 4, 4

	s := NewShared(cons)
	if !s.Init() {
		t.Fatal("expected Init to succeed on an idle console")
	}

	if cons.ColorCode() != 0x07 {
		t.Fatalf("expected default colors after Init; got 0x%x", cons.ColorCode())
	}

	if row, col := cons.Cursor(); row != 0 || col != 0 || cells[0] != 0x0720 {
		t.Fatalf("expected a cleared console; got cursor (%d, %d) and cell 0x%x", row, col, cells[0])
	}

	g := s.lock.Lock()
	defer g.Release()
	if s.Init() {
		t.Fatal("expected Init to fail while the console is busy")
	}
}

func TestSharedWrite(t *testing.T) {
	cons, cells, _ := newTestConsole()
	s := NewShared(cons)

	n, err := s.Write([]byte("ok\x00"))
	if err != nil || n != 3 {
		t.Fatalf("expected Write to return (3, nil); got (%d, %v)", n, err)
	}

	exp := []uint16{0x076F, 0x076B, 0x07FE}
	if diff := cmp.Diff(exp, []uint16(cells[:3])); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}

	if s.Dropped() != 0 {
		t.Fatalf("expected no dropped writes; got %d", s.Dropped())
	}
}

func TestSharedWriteDropsWhenBusy(t *testing.T) {
	cons, cells, _ := newTestConsole()
	s := NewShared(cons)

	g := s.lock.Lock()
	n, err := s.Write([]byte("lost"))
	g.Release()

	if err != nil || n != 4 {
		t.Fatalf("expected a dropped Write to still return (4, nil); got (%d, %v)", n, err)
	}

	if cells[0] != 0x0720 {
		t.Fatalf("expected the console not to be modified; got 0x%x", cells[0])
	}

	if s.Dropped() != 1 {
		t.Fatalf("expected 1 dropped write; got %d", s.Dropped())
	}

	// The console is usable again once the holder releases it.
	_, _ = s.Write([]byte("x"))
	if cells[0] != 0x0778 {
		t.Fatalf("expected write to succeed after release; got 0x%x", cells[0])
	}
}

func TestSharedEcho(t *testing.T) {
	cons, cells, _ := newTestConsole()
	s := NewShared(cons)

	for _, b := range []byte("ab\x08c\n\x01") {
		s.Echo(b)
	}

	exp := []uint16{0x0761, 0x0763, 0x0720}
	if diff := cmp.Diff(exp, []uint16(cells[:3])); diff != "" {
		t.Fatalf("unexpected row 0 contents (-want +got):\n%s", diff)
	}

	// Echo does not substitute unprintable bytes.
	if got := cells[Width]; got != 0x0701 {
		t.Fatalf("expected raw byte at (1, 0); got 0x%x", got)
	}

	if s.lock.IsLocked() {
		t.Fatal("expected the console lock to be released")
	}
}

func TestSharedWithColor(t *testing.T) {
	cons, cells, _ := newTestConsole()
	cons.SetColor(Cyan, Black)
	s := NewShared(cons)

	s.WithColor(LightGreen, Black, func(dev Device) {
		WriteString(dev, "42\n")

		// Diagnostics are dropped while the console is held.
		_, _ = s.Write([]byte("nested"))
	})
	_, _ = s.Write([]byte("x"))

	exp := []uint16{0x0A34, 0x0A32}
	if diff := cmp.Diff(exp, []uint16(cells[:2])); diff != "" {
		t.Fatalf("unexpected row 0 contents (-want +got):\n%s", diff)
	}

	if got := cells[Width]; got != 0x0378 {
		t.Fatalf("expected previous colors to be restored; got 0x%x", got)
	}

	if s.Dropped() != 1 {
		t.Fatalf("expected the nested write to be dropped; got %d drops", s.Dropped())
	}
}

func TestSharedWith(t *testing.T) {
	cons, _, _ := newTestConsole()
	s := NewShared(cons)

	var called bool
	s.With(func(dev Device) {
		called = dev == Device(cons)
		if !s.lock.IsLocked() {
			t.Error("expected the console to be locked while fn runs")
		}
	})

	if !called {
		t.Fatal("expected fn to be invoked with the shared device")
	}
}
