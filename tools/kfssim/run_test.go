package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"kfs/device/video/console"
	"kfs/kernel/hal/sim"
	"kfs/kernel/kfmt"
	"kfs/kernel/kmain"
)

func newTestSession(t *testing.T, out io.Writer) *session {
	t.Helper()

	cfg := defaultConfig()
	cfg.RefreshMillis = 5

	log, _, err := newLogger(cfg, io.Discard)
	if err != nil {
		t.Fatal(err)
	}

	m := sim.NewMachine()
	k, kerr := kmain.Boot(m, cfg.BootMagic, cfg.BootInfo)
	if kerr != nil {
		t.Fatalf("boot failed: %v", kerr)
	}

	return &session{
		cfg:    cfg,
		log:    log,
		m:      m,
		k:      k,
		screen: newScreen(false),
		out:    out,
	}
}

// rowText reads a screen row while holding the console lock.
func rowText(s *session, row int) string {
	var text string
	s.k.Console().With(func(console.Device) {
		text = s.m.Cells.Text(row, console.Width)
	})
	return text
}

func TestSessionEchoesInput(t *testing.T) {
	defer kfmt.SetOutputSink(nil)

	var out bytes.Buffer
	s := newTestSession(t, &out)

	startRow := s.m.CRTC.CursorOffset() / console.Width

	keys := make(chan byte, 16)
	done := make(chan error, 1)
	go func() { done <- s.run(context.Background(), keys) }()

	for _, b := range []byte("Hey!\x7f?") {
		keys <- b
	}

	deadline := time.Now().Add(5 * time.Second)
	for rowText(s, startRow) != "Hey?" {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for echo; row %d is %q", startRow, rowText(s, startRow))
		}
		time.Sleep(time.Millisecond)
	}

	keys <- keyCtrlD

	select {
	case err := <-done:
		if !errors.Is(err, errQuit) {
			t.Fatalf("expected errQuit; got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the session to stop")
	}

	if !strings.Contains(out.String(), "kfs: boot magic=0x2badb002 mbi=0x10000") {
		t.Fatalf("expected rendered frames to contain the boot banner")
	}
}

func TestSessionStopsOnCancel(t *testing.T) {
	defer kfmt.SetOutputSink(nil)

	s := newTestSession(t, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx, make(chan byte)) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean stop; got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the session to stop")
	}
}

func TestSessionStopsWhenInputCloses(t *testing.T) {
	defer kfmt.SetOutputSink(nil)

	s := newTestSession(t, io.Discard)

	keys := make(chan byte)
	close(keys)

	if err := s.run(context.Background(), keys); !errors.Is(err, errQuit) {
		t.Fatalf("expected errQuit; got %v", err)
	}
}

func TestReadKeys(t *testing.T) {
	keys := make(chan byte, 8)
	readKeys(strings.NewReader("ab\x04"), keys)

	var got []byte
	for b := range keys {
		got = append(got, b)
	}

	if string(got) != "ab\x04" {
		t.Fatalf("expected forwarded bytes %q; got %q", "ab\x04", got)
	}
}
